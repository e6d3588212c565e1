package mapgrid

import "github.com/duskforge/dungeonturn/core"

// Map is a rectangular grid of tiles, row-major.
type Map struct {
	Width, Height int
	tiles         []Tile
}

// New allocates a Width x Height map of TileEmpty, SurfaceFloor tiles.
func New(width, height int) *Map {
	m := &Map{Width: width, Height: height, tiles: make([]Tile, width*height)}
	return m
}

// InBounds reports whether (x, y) lies within the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// At returns the tile at (x, y) and whether it was in bounds.
func (m *Map) At(x, y int) (Tile, bool) {
	if !m.InBounds(x, y) {
		return Tile{}, false
	}
	return m.tiles[y*m.Width+x], true
}

// Set writes a tile at (x, y). Out-of-bounds writes are silently
// ignored; callers that need to know should check InBounds first.
func (m *Map) Set(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[y*m.Width+x] = t
}

// BlockMove reports whether (x, y) is out of bounds or its tile
// blocks movement outright (ignoring wall-sides, see EdgeWall).
func (m *Map) BlockMove(x, y int) bool {
	t, ok := m.At(x, y)
	return !ok || t.BlockMove
}

// EdgeWall returns the WallLevel blocking travel across the single
// edge crossed when stepping from (x, y) in the pure axis direction
// (dx, dy), where exactly one of dx, dy is nonzero and in {-1, 1}.
// For a diagonal step the Movement Resolver calls this twice, once
// per axis, to evaluate wall-kicks.
func (m *Map) EdgeWall(x, y, dx, dy int) WallLevel {
	switch {
	case dy == 1:
		t, ok := m.At(x, y)
		if !ok {
			return WallNone
		}
		return t.BottomWall
	case dy == -1:
		t, ok := m.At(x, y-1)
		if !ok {
			return WallNone
		}
		return t.BottomWall
	case dx == 1:
		t, ok := m.At(x+1, y)
		if !ok {
			return WallNone
		}
		return t.LeftWall
	case dx == -1:
		t, ok := m.At(x, y)
		if !ok {
			return WallNone
		}
		return t.LeftWall
	default:
		return WallNone
	}
}

// HasLineOfSight reports whether two grid points can see each other:
// no tile strictly between them blocks sight. The two endpoints
// themselves are not checked.
// Uses Bresenham traversal, adapted from the teacher's continuous
// screen-space HasLineOfSightUnsafe (engine/position.go) to whole
// grid tiles.
func (m *Map) HasLineOfSight(from, to core.Point) bool {
	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := abs(dx), abs(dy)

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	err := absDx - absDy
	x, y := x0, y0

	for {
		if x == x1 && y == y1 {
			return true
		}
		if (x != x0 || y != y0) && m.blocksSightAt(x, y) {
			return false
		}
		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}

func (m *Map) blocksSightAt(x, y int) bool {
	t, ok := m.At(x, y)
	return !ok || t.BlockSight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
