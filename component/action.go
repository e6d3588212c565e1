package component

import "github.com/duskforge/dungeonturn/core"

// Direction is the nine-way compass input alias spec.md's glossary
// calls out: the eight compass directions plus Center (0,0), the
// "wait in place" direction. It is the only surviving form of the
// source's earlier, now-discarded 9-way MoveAction.
type Direction struct {
	DX, DY int
}

var (
	DirCenter    = Direction{0, 0}
	DirNorth     = Direction{0, -1}
	DirSouth     = Direction{0, 1}
	DirEast      = Direction{1, 0}
	DirWest      = Direction{-1, 0}
	DirNorthEast = Direction{1, -1}
	DirNorthWest = Direction{-1, -1}
	DirSouthEast = Direction{1, 1}
	DirSouthWest = Direction{-1, 1}
)

// ActionKind enumerates the high-level intents an Action can carry,
// whether it came from player input or from the AI planner.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionAttack
	ActionUseItem
	ActionMapClick
	ActionPass
	ActionStateChange
	ActionIncreaseMoveMode
	ActionDecreaseMoveMode
)

// Action is a high-level intent: the entity attribute store's
// `action` attribute holds the entity's last-planned Action for the
// current turn, written either by input translation (player) or by
// the AI planner.
type Action struct {
	Kind        ActionKind
	Dir         Direction
	Target      core.Entity
	Pos         core.Point
	NewBehavior Behavior
}

// Pass is the no-op action that still consumes a full turn.
func Pass() Action { return Action{Kind: ActionPass} }

// Move constructs a movement intent in the given compass direction.
func Move(d Direction) Action { return Action{Kind: ActionMove, Dir: d} }

// Attack constructs an attack intent against a known target at pos.
func Attack(target core.Entity, pos core.Point) Action {
	return Action{Kind: ActionAttack, Target: target, Pos: pos}
}

// StateChange constructs an AI self-transition intent.
func StateChange(b Behavior) Action {
	return Action{Kind: ActionStateChange, NewBehavior: b}
}
