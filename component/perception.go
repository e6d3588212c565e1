package component

// Perception is the per-entity stat pair that gates the AI state
// machine's Idle->Investigating (hearing) and Investigating/Attacking
// FOV (sight) transitions. Populated from the config surface's
// per-entity stats (hp, power, defense, hearing radius, sight radius).
type Perception struct {
	HearingRadius int
	SightRadius   int
}
