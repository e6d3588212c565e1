package component

import "github.com/duskforge/dungeonturn/core"

// MovementKind tags the Movement Resolver's decision-table outcome
// that produced a Moved message, so replay and display can tell a
// plain step from a wall-jump or a wall-kick without re-deriving it.
type MovementKind uint8

const (
	MovementMove MovementKind = iota
	MovementAttack
	MovementCollide
	MovementJumpWall
	MovementWallKick
)

// MsgKind tags the variant a Msg carries. Every Msg is copy-by-value
// plain-old-data; none embed owning handles, so the log stays cheaply
// clonable for recording-mode snapshots.
type MsgKind uint8

const (
	// MsgAction carries a freshly issued intent (player input or an
	// AI-planned Action) through to the effect resolver.
	MsgAction MsgKind = iota
	MsgMoved
	MsgAttack
	MsgKilled
	MsgCrushed
	MsgSoundTrapTriggered
	MsgSpikeTrapTriggered
	MsgItemThrow
	MsgUseItem
	MsgPickedUp
	MsgDropItem
	MsgHammerHitWall
	MsgHammerHitEntity
	MsgSound
	MsgStateChange
	MsgPlayerDeath
	MsgChangeLevel
	MsgPlayerTurn
	// MsgGameState carries a top-level state transition request.
	// Variants the resolver does not recognize are a documented no-op
	// (spec's resolved Open Question), never a panic.
	MsgGameState
	// MsgUnavailable is the observation logged, never propagated
	// further, when a message could not be fully applied.
	MsgUnavailable
)

// Msg is the tagged event value flowing through the Message Log. Its
// payload is copy-by-value and includes every field any variant might
// need; unused fields for a given Kind are simply zero.
type Msg struct {
	Kind     MsgKind
	Entity   core.Entity
	Target   core.Entity
	Pos      core.Point
	Movement MovementKind
	Damage   int
	HP       int
	Action   Action
	Behavior Behavior
	MoveMode MoveMode
	State    GameStateKind
	Note     string
}
