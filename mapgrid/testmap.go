package mapgrid

// NewEmpty builds a width x height map with no walls anywhere — the
// `map_load: Empty` config option, and the map used by the spec's
// empty-map walk-cycle scenario.
func NewEmpty(width, height int) *Map {
	return New(width, height)
}

// ParseASCII builds a map from a small line-based test fixture:
// '.' floor, '#' a tile that blocks movement and sight, '~' water,
// 'X' the level exit. It exists for tests and the `map_load: TestMap`
// config option; the real sidecar-CSV-backed map file format is an
// external parser per spec.md §6 and is not reimplemented here.
func ParseASCII(rows []string) *Map {
	height := len(rows)
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	m := New(width, height)
	for y, row := range rows {
		for x, ch := range row {
			m.Set(x, y, asciiTile(ch))
		}
	}
	return m
}

func asciiTile(ch rune) Tile {
	switch ch {
	case '#':
		return Tile{Type: TileWall, BlockMove: true, BlockSight: true, Surface: SurfaceFloor}
	case '~':
		return Tile{Type: TileWater, Surface: SurfaceFloor}
	case 'X':
		return Tile{Type: TileExit, Surface: SurfaceFloor}
	default:
		return Tile{Type: TileEmpty, Surface: SurfaceFloor}
	}
}
