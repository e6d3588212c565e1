package movement

import (
	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
	"github.com/duskforge/dungeonturn/mapgrid"
)

// Movement is the Movement Resolver's concrete outcome, one of the
// five the spec's glossary names: Move, Attack, Collide, JumpWall,
// WallKick. A Run-mode collision with an entity is reported as either
// an Attack with Crush set (no clearance beyond — §4.4's Crushed
// translation applies instead of ordinary damage) or a Move carrying
// Pushed/PushTo (clearance exists — the defender is displaced rather
// than fought).
type Movement struct {
	Kind   component.MovementKind
	To     core.Point
	Target core.Entity

	// Crush is set when a Run-mode collision with an entity finds no
	// clearance beyond it: the Effect Resolver kills Target outright
	// instead of computing ordinary Attack damage.
	Crush bool

	// Pushed and PushTo are set when a Run-mode collision with an
	// entity finds clearance beyond it: Target is displaced to PushTo
	// and the mover advances into Target's old tile (To).
	Pushed bool
	PushTo core.Point
}

// Input bundles everything Resolve needs about the moving entity.
type Input struct {
	From     core.Point
	Dir      component.Direction
	Reach    component.Reach
	Momentum component.Momentum
	HasMomentum bool
	Mode     component.MoveMode
}

// Resolve runs the collision probe for one MoveAction and applies the
// decision table in spec.md §4.3 to produce a concrete Movement.
func Resolve(m *mapgrid.Map, occ Occupancy, in Input) Movement {
	if in.Dir == component.DirCenter {
		return Movement{Kind: component.MovementMove, To: in.From}
	}

	sx, sy := core.Sign(in.Dir.DX), core.Sign(in.Dir.DY)
	if !in.Reach.Allows(sx, sy) {
		// Malformed for this entity's reach: spec.md §5 treats this as
		// a no-op, not an error.
		return Movement{Kind: component.MovementMove, To: in.From}
	}

	if sx != 0 && sy != 0 {
		if mv, ok := tryWallKick(m, occ, in, sx, sy); ok {
			return mv
		}
	}

	col := probeLine(m, occ, in.From, sx, sy, in.Reach.N)
	return applyDecisionTable(m, occ, in, col, sx, sy)
}

// tryWallKick checks a diagonal step's two component walls
// independently. If exactly one blocks and the perpendicular slide is
// itself unobstructed, the entity advances along the open axis
// instead — the wall-kick spec.md §4.3 describes.
func tryWallKick(m *mapgrid.Map, occ Occupancy, in Input, sx, sy int) (Movement, bool) {
	blockedX := wallBlocksAxis(m, in.From, sx, 0)
	blockedY := wallBlocksAxis(m, in.From, 0, sy)
	if blockedX == blockedY {
		return Movement{}, false
	}

	var to core.Point
	if blockedX {
		to = core.Point{X: in.From.X, Y: in.From.Y + sy}
	} else {
		to = core.Point{X: in.From.X + sx, Y: in.From.Y}
	}

	if !m.InBounds(to.X, to.Y) {
		return Movement{}, false
	}
	if tile, _ := m.At(to.X, to.Y); tile.BlockMove {
		return Movement{}, false
	}
	if _, occupied := occ.BlockingEntityAt(to); occupied {
		return Movement{}, false
	}
	return Movement{Kind: component.MovementWallKick, To: to}, true
}

func applyDecisionTable(m *mapgrid.Map, occ Occupancy, in Input, col Collision, sx, sy int) Movement {
	switch col.Kind {
	case CollisionNone:
		return Movement{Kind: component.MovementMove, To: col.Target}

	case CollisionBlockedTile:
		return Movement{Kind: component.MovementMove, To: col.LastClear}

	case CollisionWall:
		maxed := in.HasMomentum && in.Momentum.Magnitude() == in.Momentum.Max && in.Momentum.Max > 0
		if maxed && col.WallLevel == mapgrid.WallShort {
			if beyond, clear := tileBeyondClear(m, col.WallTile, sx, sy); clear {
				return Movement{Kind: component.MovementJumpWall, To: beyond}
			}
		}
		if !in.HasMomentum {
			// An entity that never accumulates momentum is not gated
			// by the player's running mechanic: the per-spec decision
			// table's "Move(x+dx,y+dy) if momentum absent" branch.
			dest := core.Point{X: in.From.X + sx, Y: in.From.Y + sy}
			if m.InBounds(dest.X, dest.Y) {
				if tile, _ := m.At(dest.X, dest.Y); !tile.BlockMove {
					if _, occupied := occ.BlockingEntityAt(dest); !occupied {
						return Movement{Kind: component.MovementMove, To: dest}
					}
				}
			}
		}
		return Movement{Kind: component.MovementMove, To: col.LastClear}

	case CollisionEntity:
		if in.Mode == component.MoveModeRun {
			beyond, clear := tileBeyondClear(m, col.Target, sx, sy)
			if clear {
				return Movement{Kind: component.MovementMove, To: col.Target, Target: col.Entity, Pushed: true, PushTo: beyond}
			}
			// A Crush still carries the mover through to the crushed
			// entity's tile — unlike an ordinary Attack, the target no
			// longer occupies it once destroyed.
			return Movement{Kind: component.MovementAttack, To: col.Target, Target: col.Entity, Crush: true}
		}
		return Movement{Kind: component.MovementAttack, To: col.LastClear, Target: col.Entity}

	default:
		return Movement{Kind: component.MovementMove, To: in.From}
	}
}
