package component

// Name is the symbolic identity used by find_by_name-style lookups.
type Name string

const (
	NamePlayer Name = "Player"
	NameGol    Name = "Gol"
	NamePawn   Name = "Pawn"
	NameStone  Name = "Stone"
	NameHammer Name = "Hammer"
	NameGoal   Name = "Goal"
	NameExit   Name = "Exit"
	NameMouse  Name = "Mouse"
)

// Glyph is the advisory display rune; the resolver only ever changes
// it to mark a death ('%').
type Glyph struct {
	Rune rune
}

// DeathGlyph is the rune every killed entity's Glyph is set to.
const DeathGlyph = '%'

// Blocks records whether an entity blocks movement through its tile.
// Held inventory items carry no Blocks attribute: the resolver's
// PickedUp translation removes it.
type Blocks struct {
	Value bool
}

// CountDown is turns remaining until auto-removal; the housekeeping
// pass in the turn stepper removes the entity once it reaches zero.
type CountDown struct {
	Turns int
}

// NeedsRemoval flags an entity for removal once its Animation queue
// has drained.
type NeedsRemoval struct {
	Value bool
}

// Limbo excludes an entity from AI planning without removing it from
// the store (e.g. an entity mid-death-animation).
type Limbo struct{}

// MessageScratch is a per-entity message inbox stored in
// EntityStore.Messages. Nothing in this module fills, reads or clears
// it: the AI planner receives Sound positions as a slice argument
// instead.
type MessageScratch struct {
	Inbox []Msg
}
