// Package mapgrid is the rectangular tile grid the movement resolver
// and AI planner consult. It owns no entities; the Entity Store owns
// those. Grounded on the teacher's maze/generator.go tile vocabulary
// (TileType, wall levels) and engine/position.go's Bresenham
// line-of-sight walk, both discretized here to whole grid tiles
// rather than the teacher's continuous screen coordinates.
package mapgrid

// TileType is the terrain kind of a tile.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileWall
	TileWater
	TileExit
	TileRubble
)

// Surface is the walkable surface a tile presents, independent of
// TileType (a tile can be Empty terrain with a Rubble surface left
// behind by a Crushed monster).
type Surface uint8

const (
	SurfaceFloor Surface = iota
	SurfaceRubble
	SurfaceGrass
)

// WallLevel is the strength of a wall on one side of a tile.
// ShortWall stops a mover with momentum unless its momentum is maxed
// (then it jumps over), and a hammer can break it; TallWall is never
// jumped. An entity with no Momentum attribute is stopped by neither
// (see movement.Resolve).
type WallLevel uint8

const (
	WallNone WallLevel = iota
	WallShort
	WallTall
)

// Tile is one cell of the Map.
type Tile struct {
	Type       TileType
	BlockMove  bool
	BlockSight bool
	Surface    Surface
	BottomWall WallLevel // wall on this tile's south edge
	LeftWall   WallLevel // wall on this tile's west edge
}

// Blocks reports whether this tile itself blocks movement, ignoring
// any wall-side attributes (those are evaluated per travel direction
// by Map.EdgeWall).
func (t Tile) Blocks() bool {
	return t.BlockMove
}
