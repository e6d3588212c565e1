package movement

import (
	"testing"

	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
	"github.com/duskforge/dungeonturn/mapgrid"
)

// fakeOccupancy reports the entity listed at each point as blocking;
// an empty fakeOccupancy{} reports no entity anywhere.
type fakeOccupancy map[core.Point]core.Entity

func (f fakeOccupancy) BlockingEntityAt(p core.Point) (core.Entity, bool) {
	e, ok := f[p]
	return e, ok
}

func reachOne(kind component.ReachKind) component.Reach {
	return component.Reach{Kind: kind, N: 1}
}

func TestResolveEmptyMapWalk(t *testing.T) {
	m := mapgrid.NewEmpty(10, 10)
	in := Input{
		From:  core.Point{X: 4, Y: 4},
		Dir:   component.DirEast,
		Reach: reachOne(component.ReachSingle),
	}
	mv := Resolve(m, fakeOccupancy{}, in)
	if mv.Kind != component.MovementMove {
		t.Fatalf("Kind = %v, want Move", mv.Kind)
	}
	want := core.Point{X: 5, Y: 4}
	if mv.To != want {
		t.Fatalf("To = %v, want %v", mv.To, want)
	}
}

func TestResolveRunCrushAgainstWall(t *testing.T) {
	rows := []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"....#.....",
		"..........",
		"..........",
		"..........",
	}
	m := mapgrid.ParseASCII(rows)
	enemy := core.Entity(2)
	occ := fakeOccupancy{{X: 4, Y: 5}: enemy}

	in := Input{
		From:        core.Point{X: 4, Y: 4},
		Dir:         component.DirSouth,
		Reach:       reachOne(component.ReachSingle),
		Mode:        component.MoveModeRun,
		HasMomentum: true,
		Momentum:    component.Momentum{MX: 0, MY: 3, Max: 3},
	}
	mv := Resolve(m, occ, in)

	if mv.Kind != component.MovementAttack || !mv.Crush {
		t.Fatalf("got Kind=%v Crush=%v, want Attack/Crush=true", mv.Kind, mv.Crush)
	}
	if mv.Target != enemy {
		t.Fatalf("Target = %v, want %v", mv.Target, enemy)
	}
	if mv.To != (core.Point{X: 4, Y: 5}) {
		t.Fatalf("To = %v, want mover to crush through into the enemy's tile", mv.To)
	}
}

func TestResolveRunPushWithClearanceBeyond(t *testing.T) {
	m := mapgrid.NewEmpty(10, 10)
	enemy := core.Entity(2)
	occ := fakeOccupancy{{X: 5, Y: 4}: enemy}

	in := Input{
		From:        core.Point{X: 4, Y: 4},
		Dir:         component.DirEast,
		Reach:       reachOne(component.ReachSingle),
		Mode:        component.MoveModeRun,
		HasMomentum: true,
		Momentum:    component.Momentum{MX: 3, MY: 0, Max: 3},
	}
	mv := Resolve(m, occ, in)

	if mv.Kind != component.MovementMove || !mv.Pushed {
		t.Fatalf("got Kind=%v Pushed=%v, want Move/Pushed=true", mv.Kind, mv.Pushed)
	}
	if mv.To != (core.Point{X: 5, Y: 4}) {
		t.Fatalf("mover To = %v, want enemy's old tile", mv.To)
	}
	if mv.PushTo != (core.Point{X: 6, Y: 4}) {
		t.Fatalf("PushTo = %v, want one tile further east", mv.PushTo)
	}
}

func TestResolveRunCrushOnFirstMoveAfterIncreaseMoveMode(t *testing.T) {
	// IncreaseMoveMode only raises Max; it never touches the current
	// MX/MY. The very first Run-mode move after switching modes still
	// has magnitude 0, and must Crush/Push on Mode alone.
	rows := []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"....#.....",
		"..........",
		"..........",
		"..........",
	}
	m := mapgrid.ParseASCII(rows)
	enemy := core.Entity(2)
	occ := fakeOccupancy{{X: 4, Y: 5}: enemy}

	in := Input{
		From:        core.Point{X: 4, Y: 4},
		Dir:         component.DirSouth,
		Reach:       reachOne(component.ReachSingle),
		Mode:        component.MoveModeRun,
		HasMomentum: true,
		Momentum:    component.Momentum{MX: 0, MY: 0, Max: 3},
	}
	mv := Resolve(m, occ, in)

	if mv.Kind != component.MovementAttack || !mv.Crush {
		t.Fatalf("got Kind=%v Crush=%v, want Attack/Crush=true", mv.Kind, mv.Crush)
	}
}

func TestResolveRunPushOnFirstMoveAfterIncreaseMoveMode(t *testing.T) {
	m := mapgrid.NewEmpty(10, 10)
	enemy := core.Entity(2)
	occ := fakeOccupancy{{X: 5, Y: 4}: enemy}

	in := Input{
		From:        core.Point{X: 4, Y: 4},
		Dir:         component.DirEast,
		Reach:       reachOne(component.ReachSingle),
		Mode:        component.MoveModeRun,
		HasMomentum: true,
		Momentum:    component.Momentum{MX: 0, MY: 0, Max: 3},
	}
	mv := Resolve(m, occ, in)

	if mv.Kind != component.MovementMove || !mv.Pushed {
		t.Fatalf("got Kind=%v Pushed=%v, want Move/Pushed=true", mv.Kind, mv.Pushed)
	}
	if mv.PushTo != (core.Point{X: 6, Y: 4}) {
		t.Fatalf("PushTo = %v, want one tile further east", mv.PushTo)
	}
}

func TestResolveWallJumpOverShortWall(t *testing.T) {
	m := mapgrid.NewEmpty(10, 10)
	m.Set(4, 4, mapgrid.Tile{Type: mapgrid.TileEmpty, BottomWall: mapgrid.WallShort})

	in := Input{
		From:        core.Point{X: 4, Y: 4},
		Dir:         component.DirSouth,
		Reach:       reachOne(component.ReachSingle),
		HasMomentum: true,
		Momentum:    component.Momentum{MX: 0, MY: 3, Max: 3},
	}
	mv := Resolve(m, fakeOccupancy{}, in)

	if mv.Kind != component.MovementJumpWall {
		t.Fatalf("Kind = %v, want JumpWall", mv.Kind)
	}
	if mv.To != (core.Point{X: 4, Y: 6}) {
		t.Fatalf("To = %v, want the tile beyond the wall", mv.To)
	}
}

func TestResolveTallWallNeverJumpable(t *testing.T) {
	m := mapgrid.NewEmpty(10, 10)
	m.Set(4, 4, mapgrid.Tile{Type: mapgrid.TileEmpty, BottomWall: mapgrid.WallTall})

	in := Input{
		From:        core.Point{X: 4, Y: 4},
		Dir:         component.DirSouth,
		Reach:       reachOne(component.ReachSingle),
		HasMomentum: true,
		Momentum:    component.Momentum{MX: 0, MY: 3, Max: 3},
	}
	mv := Resolve(m, fakeOccupancy{}, in)

	if mv.Kind != component.MovementMove {
		t.Fatalf("Kind = %v, want Move (stopped at wall)", mv.Kind)
	}
	if mv.To != (core.Point{X: 4, Y: 4}) {
		t.Fatalf("To = %v, want to remain at last clear tile", mv.To)
	}
}

func TestResolveMomentumlessEntityPassesWallSide(t *testing.T) {
	m := mapgrid.NewEmpty(10, 10)
	m.Set(4, 4, mapgrid.Tile{Type: mapgrid.TileEmpty, BottomWall: mapgrid.WallShort})

	in := Input{
		From:        core.Point{X: 4, Y: 4},
		Dir:         component.DirSouth,
		Reach:       reachOne(component.ReachSingle),
		HasMomentum: false,
	}
	mv := Resolve(m, fakeOccupancy{}, in)

	if mv.Kind != component.MovementMove {
		t.Fatalf("Kind = %v, want Move", mv.Kind)
	}
	if mv.To != (core.Point{X: 4, Y: 5}) {
		t.Fatalf("To = %v, want to pass straight through the wall-side", mv.To)
	}
}

func TestResolveWallKickOnDiagonal(t *testing.T) {
	m := mapgrid.NewEmpty(10, 10)
	// Block the pure-X edge out of (4,4) but leave the pure-Y edge open.
	m.Set(5, 4, mapgrid.Tile{Type: mapgrid.TileEmpty, LeftWall: mapgrid.WallTall})

	in := Input{
		From:  core.Point{X: 4, Y: 4},
		Dir:   component.DirSouthEast,
		Reach: reachOne(component.ReachSingle),
	}
	mv := Resolve(m, fakeOccupancy{}, in)

	if mv.Kind != component.MovementWallKick {
		t.Fatalf("Kind = %v, want WallKick", mv.Kind)
	}
	if mv.To != (core.Point{X: 4, Y: 5}) {
		t.Fatalf("To = %v, want the slide along the open axis", mv.To)
	}
}

func TestResolveBlockedTileStopsEveryEntityRegardless(t *testing.T) {
	rows := []string{
		"....",
		"....",
		"....",
		"####",
	}
	m := mapgrid.ParseASCII(rows)
	in := Input{
		From:        core.Point{X: 1, Y: 2},
		Dir:         component.DirSouth,
		Reach:       reachOne(component.ReachSingle),
		HasMomentum: false,
	}
	mv := Resolve(m, fakeOccupancy{}, in)
	if mv.To != (core.Point{X: 1, Y: 2}) {
		t.Fatalf("To = %v, want to remain clear of the blocked tile", mv.To)
	}
}

func TestResolveWaitInPlace(t *testing.T) {
	m := mapgrid.NewEmpty(5, 5)
	in := Input{From: core.Point{X: 2, Y: 2}, Dir: component.DirCenter, Reach: reachOne(component.ReachSingle)}
	mv := Resolve(m, fakeOccupancy{}, in)
	if mv.Kind != component.MovementMove || mv.To != in.From {
		t.Fatalf("got %+v, want a no-op Move at From", mv)
	}
}
