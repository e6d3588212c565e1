// Package movement is the Movement Resolver: it translates an
// intended MoveAction, an entity's Reach and the map into a concrete
// Movement (spec.md §4.3), respecting momentum. Grounded on the
// teacher's physics/movement.go sub-stepped integration and
// physics/collision.go's profile-driven impulse model — both rewired
// from continuous Q16.16 fixed-point motion to a discrete,
// tile-at-a-time walk, since this domain is turn-based on an integer
// grid rather than real-time.
package movement

import (
	"github.com/duskforge/dungeonturn/core"
	"github.com/duskforge/dungeonturn/mapgrid"
)

// Occupancy answers "what blocking entity, if any, sits at p" —
// the Movement Resolver's analog of the teacher's WallQueryFunc
// callback (physics/movement.go), generalized to an interface so
// this package never needs to import the Entity Store directly.
type Occupancy interface {
	BlockingEntityAt(p core.Point) (core.Entity, bool)
}

// CollisionKind is the probe's tile-walk classification.
type CollisionKind uint8

const (
	CollisionNone CollisionKind = iota
	CollisionBlockedTile
	CollisionWall
	CollisionEntity
)

// Collision is the result of walking the line from an entity's
// position toward its intended destination, tile by tile.
type Collision struct {
	Kind      CollisionKind
	Target    core.Point // the tile the line was walking toward when it stopped or cleared
	LastClear core.Point // the last tile on the line known to be clear
	Entity    core.Entity
	WallTile  core.Point        // the tile on the far side of a blocking wall-side
	WallLevel mapgrid.WallLevel // the strength of the blocking wall-side
}

// probeLine walks from `from` in the unit direction (sx, sy) for up
// to dist steps, classifying the first obstruction per spec.md §4.3.
func probeLine(m *mapgrid.Map, occ Occupancy, from core.Point, sx, sy, dist int) Collision {
	cur := from
	last := from

	for step := 0; step < dist; step++ {
		next := core.Point{X: cur.X + sx, Y: cur.Y + sy}

		if !m.InBounds(next.X, next.Y) {
			return Collision{Kind: CollisionWall, WallTile: next, LastClear: last, Target: next}
		}

		if lvl := m.EdgeWall(cur.X, cur.Y, sx, sy); lvl != mapgrid.WallNone {
			return Collision{Kind: CollisionWall, WallTile: next, LastClear: last, Target: next, WallLevel: lvl}
		}

		if tile, _ := m.At(next.X, next.Y); tile.BlockMove {
			return Collision{Kind: CollisionBlockedTile, Target: next, LastClear: last}
		}

		if other, blocked := occ.BlockingEntityAt(next); blocked {
			return Collision{Kind: CollisionEntity, Entity: other, Target: next, LastClear: last}
		}

		cur = next
		last = cur
	}

	return Collision{Kind: CollisionNone, Target: cur, LastClear: last}
}

// wallBlocksAxis reports whether a wall-side on the pure (sx, sy)
// unit step out of cur is present. Exactly one of sx, sy is nonzero
// here; diagonal steps are decomposed into their two axis checks by
// the caller (Resolve), since a diagonal's two component walls must
// be evaluated independently to detect a wall-kick.
func wallBlocksAxis(m *mapgrid.Map, cur core.Point, sx, sy int) bool {
	return m.EdgeWall(cur.X, cur.Y, sx, sy) != mapgrid.WallNone
}

// tileBeyondClear reports whether the tile one further step past a
// wall, in the same travel direction, is itself walkable — the
// "tile beyond wall is empty" condition a wall-jump requires.
func tileBeyondClear(m *mapgrid.Map, wallTile core.Point, sx, sy int) (core.Point, bool) {
	beyond := core.Point{X: wallTile.X + sx, Y: wallTile.Y + sy}
	if !m.InBounds(beyond.X, beyond.Y) {
		return beyond, false
	}
	tile, _ := m.At(beyond.X, beyond.Y)
	return beyond, !tile.BlockMove
}
