package component

import "github.com/duskforge/dungeonturn/core"

// AI marks an entity as a participant in AI planning. Its presence is
// the only thing that matters; it carries no data.
type AI struct{}

// BehaviorKind is the AI state machine's three states.
type BehaviorKind uint8

const (
	BehaviorIdle BehaviorKind = iota
	BehaviorInvestigating
	BehaviorAttacking
)

// Behavior is the AI entity's current state. Pos is meaningful only
// for Investigating (the point being investigated, usually a Sound
// source or a last-seen position); Target is meaningful only for
// Attacking, and is an id, never a pointer, so a dead target is
// detected rather than dereferenced (spec's cyclic-reference note).
type Behavior struct {
	Kind   BehaviorKind
	Pos    core.Point
	Target core.Entity
}

// Idle constructs the resting behavior state.
func Idle() Behavior { return Behavior{Kind: BehaviorIdle} }

// Investigating constructs a behavior chasing down a point of interest.
func Investigating(pos core.Point) Behavior {
	return Behavior{Kind: BehaviorInvestigating, Pos: pos}
}

// Attacking constructs a behavior locked onto a target entity, with
// its last-known position retained so a dangling target demotes
// cleanly to Investigating(last_seen).
func Attacking(target core.Entity, lastSeen core.Point) Behavior {
	return Behavior{Kind: BehaviorAttacking, Target: target, Pos: lastSeen}
}
