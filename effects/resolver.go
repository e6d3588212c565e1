// Package effects is the Effect Resolver: it drains the Message Log
// to fixed point, translating each Msg into concrete Entity Store and
// Map mutations. Grounded on the teacher's engine/spatial_transactions.go
// transaction-apply loop (pop, mutate, possibly enqueue more, repeat
// until drained) and its fmt.Errorf sentinel-wrapping error style.
package effects

import (
	"fmt"

	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
	"github.com/duskforge/dungeonturn/engine"
	"github.com/duskforge/dungeonturn/mapgrid"
	"github.com/duskforge/dungeonturn/metrics"
	"github.com/duskforge/dungeonturn/movement"
	"github.com/duskforge/dungeonturn/simerr"
)

// Resolver owns nothing; it borrows the Game value's Entity Store,
// Map, Message Log and RNG for the duration of one Run.
type Resolver struct {
	ES  *engine.EntityStore
	Map *mapgrid.Map
	Log *engine.MessageLog
	RNG *engine.RNG

	// Sounds accumulates every Sound message's position emitted during
	// this Run, for the AI Planner's Idle->Investigating hearing check.
	Sounds []core.Point

	// ChangeLevel is set when a ChangeLevel message is processed; the
	// caller (Turn Stepper) is responsible for actually advancing the
	// level, per spec.md §4.4's "resolver returns; caller advances
	// level".
	ChangeLevel bool

	// PendingState, when PendingStateSet is true, is a top-level game
	// state transition (e.g. Lose on PlayerDeath) the caller applies
	// after Run returns.
	PendingState    component.GameStateKind
	PendingStateSet bool
}

// New constructs a Resolver over the given collaborators. A fresh
// Resolver should be built once per Run call so Sounds/ChangeLevel
// don't leak across turns.
func New(es *engine.EntityStore, m *mapgrid.Map, log *engine.MessageLog, rng *engine.RNG) *Resolver {
	return &Resolver{ES: es, Map: m, Log: log, RNG: rng}
}

// Run pops and applies messages until the log drains, including any
// enqueued by earlier messages in the same call. It returns only on
// an InvariantViolation — every other failure is converted to a
// logged Unavailable observation and processing continues, per
// spec.md §7's propagation policy.
func (r *Resolver) Run() error {
	for {
		msg, ok := r.Log.Pop()
		if !ok {
			return nil
		}
		if err := r.apply(msg); err != nil {
			if simerr.Is(err, simerr.Invariant) {
				metrics.InvariantViolationsTotal.Inc()
				return err
			}
			metrics.UnavailableObservationsTotal.Inc()
			r.Log.Log(component.Msg{Kind: component.MsgUnavailable, Entity: msg.Entity, Note: err.Error()})
			continue
		}
		metrics.MessagesResolvedTotal.Inc()
	}
}

func (r *Resolver) apply(msg component.Msg) error {
	switch msg.Kind {
	case component.MsgAction:
		return r.applyAction(msg)
	case component.MsgMoved:
		return r.applyMoved(msg)
	case component.MsgAttack:
		return r.applyAttack(msg)
	case component.MsgKilled:
		return r.applyKilled(msg)
	case component.MsgCrushed:
		return r.applyCrushed(msg)
	case component.MsgSoundTrapTriggered:
		return r.applySoundTrap(msg)
	case component.MsgSpikeTrapTriggered:
		return r.applySpikeTrap(msg)
	case component.MsgItemThrow:
		return r.applyItemThrow(msg)
	case component.MsgUseItem:
		return r.applyUseItem(msg)
	case component.MsgPickedUp:
		return r.applyPickedUp(msg)
	case component.MsgDropItem:
		return r.applyDropItem(msg)
	case component.MsgHammerHitWall:
		return r.applyHammerHitWall(msg)
	case component.MsgHammerHitEntity:
		return r.applyHammerHitEntity(msg)
	case component.MsgSound:
		r.Sounds = append(r.Sounds, msg.Pos)
		return nil
	case component.MsgStateChange:
		r.ES.Behavior.Set(msg.Entity, msg.Behavior)
		return nil
	case component.MsgPlayerDeath:
		r.PendingState, r.PendingStateSet = component.GameStateLose, true
		return nil
	case component.MsgChangeLevel:
		r.ChangeLevel = true
		return nil
	case component.MsgPlayerTurn:
		return nil
	case component.MsgGameState:
		return r.applyGameState(msg)
	case component.MsgUnavailable:
		return nil
	default:
		return nil
	}
}

// applyAction decodes a high-level intent into Movement Resolver
// calls or item-effect messages.
func (r *Resolver) applyAction(msg component.Msg) error {
	entity := msg.Entity
	action := msg.Action

	// A non-move action ends any in-progress compound (half+half) turn
	// — spec's resolved Open Question on half-turn accounting.
	if action.Kind != component.ActionMove {
		if mom, ok := r.ES.Momentum.Get(entity); ok && mom.TookHalfTurn {
			mom.TookHalfTurn = false
			r.ES.Momentum.Set(entity, mom)
		}
	}

	switch action.Kind {
	case component.ActionNone, component.ActionPass:
		return nil

	case component.ActionIncreaseMoveMode:
		mode, _ := r.ES.MoveMode.Get(entity)
		if mode < component.MoveModeRun {
			mode++
		}
		r.ES.MoveMode.Set(entity, mode)
		if mom, ok := r.ES.Momentum.Get(entity); ok {
			mom.Max = mode.MaxMomentum()
			r.ES.Momentum.Set(entity, mom)
		}
		return nil

	case component.ActionDecreaseMoveMode:
		mode, _ := r.ES.MoveMode.Get(entity)
		if mode > component.MoveModeSneak {
			mode--
		}
		r.ES.MoveMode.Set(entity, mode)
		if mom, ok := r.ES.Momentum.Get(entity); ok {
			mom.Max = mode.MaxMomentum()
			mom.ClampToMax()
			r.ES.Momentum.Set(entity, mom)
		}
		return nil

	case component.ActionStateChange:
		r.ES.Behavior.Set(entity, action.NewBehavior)
		return nil

	case component.ActionMove:
		return r.applyMoveAction(entity, action)

	case component.ActionAttack:
		return r.emitAttack(entity, action.Target, 0)

	case component.ActionUseItem:
		return r.applyUseItemAction(entity, action)

	case component.ActionMapClick:
		return nil

	default:
		return fmt.Errorf("unrecognized action kind %v: %w", action.Kind, simerr.Unavailable)
	}
}

func (r *Resolver) applyMoveAction(entity core.Entity, action component.Action) error {
	pos, ok := r.ES.Position.Get(entity)
	if !ok {
		return fmt.Errorf("entity %d has no position: %w", entity, simerr.Invariant)
	}
	reach, ok := r.ES.MovementReach.Get(entity)
	if !ok {
		reach = component.Reach{Kind: component.ReachSingle, N: 1}
	}
	mom, hasMom := r.ES.Momentum.Get(entity)
	mode, _ := r.ES.MoveMode.Get(entity)

	in := movement.Input{
		From:        pos.Pos,
		Dir:         action.Dir,
		Reach:       reach,
		Momentum:    mom,
		HasMomentum: hasMom,
		Mode:        mode,
	}
	mv := movement.Resolve(r.Map, occupancyView{r.ES}, in)

	switch mv.Kind {
	case component.MovementMove:
		if mv.Pushed {
			r.Log.Log(component.Msg{Kind: component.MsgMoved, Entity: mv.Target, Pos: mv.PushTo, Movement: component.MovementMove})
		}
		r.Log.Log(component.Msg{Kind: component.MsgMoved, Entity: entity, Pos: mv.To, Movement: mv.Kind, MoveMode: mode})
		return nil

	case component.MovementJumpWall, component.MovementWallKick:
		r.Log.Log(component.Msg{Kind: component.MsgMoved, Entity: entity, Pos: mv.To, Movement: mv.Kind, MoveMode: mode})
		return nil

	case component.MovementAttack:
		if mv.Crush {
			r.Log.Log(component.Msg{Kind: component.MsgCrushed, Entity: entity, Target: mv.Target, Pos: mv.To})
			r.Log.Log(component.Msg{Kind: component.MsgMoved, Entity: entity, Pos: mv.To, Movement: mv.Kind, MoveMode: mode})
			return nil
		}
		return r.emitAttack(entity, mv.Target, 0)

	default:
		return nil
	}
}

// emitAttack computes raw damage from attacker's Power and the
// defender's Defense (extraDamage adds a fixed bonus, e.g. a spike
// trap) and enqueues an Attack message.
func (r *Resolver) emitAttack(attacker, target core.Entity, extraDamage int) error {
	af, _ := r.ES.Fighter.Get(attacker)
	df, ok := r.ES.Fighter.Get(target)
	if !ok {
		return fmt.Errorf("attack target %d has no fighter: %w", target, simerr.Invariant)
	}
	dmg := df.EffectiveDamage(af.Power+extraDamage)
	r.Log.Log(component.Msg{Kind: component.MsgAttack, Entity: attacker, Target: target, Damage: dmg})
	return nil
}

func (r *Resolver) applyMoved(msg component.Msg) error {
	pos, ok := r.ES.Position.Get(msg.Entity)
	if !ok {
		return fmt.Errorf("moved entity %d has no position: %w", msg.Entity, simerr.Invariant)
	}
	dx, dy := msg.Pos.X-pos.Pos.X, msg.Pos.Y-pos.Pos.Y
	r.ES.Position.Set(msg.Entity, component.Position{Pos: msg.Pos})

	if mom, ok := r.ES.Momentum.Get(msg.Entity); ok {
		if msg.Movement == component.MovementWallKick {
			// A wall-kick reorients momentum to the new heading outright
			// rather than accumulating it, and always completes as a
			// full turn — never a half-turn.
			mom.Reorient(dx, dy)
		} else {
			mom.Advance(dx, dy)
			// A magnitude>1 move that has not yet consumed a half-turn
			// marks one (the Turn Stepper reads TookHalfTurn after Run
			// to decide whether to skip AI planning and turn_count this
			// call); the next magnitude>1 move completes the pair and
			// resets it, so the compound turn alternates half/half rather
			// than staying stuck. A non-move action clears it directly
			// (applyAction does that, per spec's resolved Open Question).
			switch {
			case mom.Magnitude() > 1 && !mom.TookHalfTurn:
				mom.TookHalfTurn = true
			default:
				mom.TookHalfTurn = false
			}
		}
		r.ES.Momentum.Set(msg.Entity, mom)
	}

	radius := msg.MoveMode.SoundRadius()
	r.Log.Log(component.Msg{Kind: component.MsgSound, Entity: msg.Entity, Pos: msg.Pos, Damage: radius})
	return nil
}

func (r *Resolver) applyAttack(msg component.Msg) error {
	df, ok := r.ES.Fighter.Get(msg.Target)
	if !ok {
		return fmt.Errorf("attack target %d has no fighter: %w", msg.Target, simerr.Invariant)
	}
	df.HP -= msg.Damage
	r.ES.Fighter.Set(msg.Target, df)

	if mom, ok := r.ES.Momentum.Get(msg.Entity); ok {
		mom.Clear()
		r.ES.Momentum.Set(msg.Entity, mom)
	}

	if df.HP <= 0 {
		r.Log.LogFront(component.Msg{Kind: component.MsgKilled, Entity: msg.Entity, Target: msg.Target})
	}
	return nil
}

func (r *Resolver) applyKilled(msg component.Msg) error {
	r.killEntity(msg.Target)

	df, _ := r.ES.Fighter.Get(msg.Target)
	if df.OnDeath == component.OnDeathPlayer {
		r.Log.Log(component.Msg{Kind: component.MsgPlayerDeath, Entity: msg.Target})
	}
	return nil
}

func (r *Resolver) applyCrushed(msg component.Msg) error {
	r.killEntity(msg.Target)
	if pos, ok := r.ES.Position.Get(msg.Target); ok {
		if tile, ok := r.Map.At(pos.Pos.X, pos.Pos.Y); ok {
			tile.Surface = mapgrid.SurfaceRubble
			r.Map.Set(pos.Pos.X, pos.Pos.Y, tile)
		}
	}
	return nil
}

// killEntity applies the common death bookkeeping spec.md §4.4
// describes for both Killed and Crushed.
func (r *Resolver) killEntity(target core.Entity) {
	status, _ := r.ES.Status.Get(target)
	status.Alive = false
	r.ES.Status.Set(target, status)
	r.ES.Blocks.Set(target, component.Blocks{Value: false})
	r.ES.Glyph.Set(target, component.Glyph{Rune: component.DeathGlyph})
	r.ES.AI.Remove(target)
}

func (r *Resolver) applySoundTrap(msg component.Msg) error {
	r.Log.Log(component.Msg{Kind: component.MsgSound, Entity: msg.Entity, Pos: msg.Pos, Damage: msg.Damage})
	return nil
}

func (r *Resolver) applySpikeTrap(msg component.Msg) error {
	return r.emitAttack(msg.Entity, msg.Target, msg.Damage)
}

func (r *Resolver) applyItemThrow(msg component.Msg) error {
	return nil
}

// applyUseItemAction swings the hammer from entity's own tile toward
// action.Pos. The wall it can break lives on the edge between the two
// tiles (addressed the same way movement's wall-kick/collision probe
// addresses it via Map.EdgeWall), not on action.Pos itself. A short
// wall and an occupant at action.Pos are independent: both break/hit
// in the same swing when both are present.
func (r *Resolver) applyUseItemAction(entity core.Entity, action component.Action) error {
	if _, ok := r.ES.IsInInventory(entity, component.NameHammer); !ok {
		return fmt.Errorf("entity %d has no hammer: %w", entity, simerr.Unavailable)
	}
	pos, ok := r.ES.Position.Get(entity)
	if !ok {
		return fmt.Errorf("entity %d has no position: %w", entity, simerr.Invariant)
	}

	dx, dy := core.Sign(action.Pos.X-pos.Pos.X), core.Sign(action.Pos.Y-pos.Pos.Y)
	hitWall := false
	if dx != 0 || dy != 0 {
		if r.Map.EdgeWall(pos.Pos.X, pos.Pos.Y, dx, dy) == mapgrid.WallShort {
			r.clearEdgeWall(pos.Pos.X, pos.Pos.Y, dx, dy)
			hitWall = true
		}
	}

	target, hasTarget := r.occupantAt(action.Pos)

	if hitWall {
		r.Log.Log(component.Msg{Kind: component.MsgHammerHitWall, Entity: entity, Pos: action.Pos})
	}
	if hasTarget {
		r.Log.Log(component.Msg{Kind: component.MsgHammerHitEntity, Entity: entity, Target: target, Pos: action.Pos})
	}
	if !hitWall && !hasTarget {
		return fmt.Errorf("hammer swing at %v hit nothing: %w", action.Pos, simerr.Unavailable)
	}
	return nil
}

// clearEdgeWall removes a short wall on the edge crossed stepping from
// (x, y) toward (x+dx, y+dy), mirroring Map.EdgeWall's own addressing
// of which tile's wall-side field owns that edge.
func (r *Resolver) clearEdgeWall(x, y, dx, dy int) {
	switch {
	case dy == 1:
		if tile, ok := r.Map.At(x, y); ok {
			tile.BottomWall = mapgrid.WallNone
			r.Map.Set(x, y, tile)
		}
	case dy == -1:
		if tile, ok := r.Map.At(x, y-1); ok {
			tile.BottomWall = mapgrid.WallNone
			r.Map.Set(x, y-1, tile)
		}
	case dx == 1:
		if tile, ok := r.Map.At(x+1, y); ok {
			tile.LeftWall = mapgrid.WallNone
			r.Map.Set(x+1, y, tile)
		}
	case dx == -1:
		if tile, ok := r.Map.At(x, y); ok {
			tile.LeftWall = mapgrid.WallNone
			r.Map.Set(x, y, tile)
		}
	}
}

func (r *Resolver) applyUseItem(msg component.Msg) error {
	return nil
}

func (r *Resolver) applyPickedUp(msg component.Msg) error {
	name, ok := r.ES.Name.Get(msg.Target)
	if !ok {
		return fmt.Errorf("picked-up item %d has no name: %w", msg.Target, simerr.Invariant)
	}
	inv, _ := r.ES.Inventory.Get(msg.Entity)
	switch name {
	case component.NameHammer:
		inv.PushFront(msg.Target)
	default:
		inv.PushBack(msg.Target)
	}
	r.ES.Inventory.Set(msg.Entity, inv)
	r.ES.Blocks.Remove(msg.Target)
	return nil
}

func (r *Resolver) applyDropItem(msg component.Msg) error {
	if !r.ES.RemoveItem(msg.Entity, msg.Target) {
		return fmt.Errorf("item %d is not in %d's inventory: %w", msg.Target, msg.Entity, simerr.Unavailable)
	}
	pos, ok := r.ES.Position.Get(msg.Entity)
	if !ok {
		return fmt.Errorf("holder %d has no position: %w", msg.Entity, simerr.Invariant)
	}
	r.ES.Position.Set(msg.Target, component.Position{Pos: pos.Pos})
	return nil
}

// applyHammerHitWall is a pure notification: the wall break itself
// already happened in applyUseItemAction, before either message was
// logged, so there is no further state to mutate here.
func (r *Resolver) applyHammerHitWall(msg component.Msg) error {
	return nil
}

// applyHammerHitEntity deals hammer damage directly (rather than going
// through emitAttack/applyAttack's generic path) so a hammer kill can
// leave Rubble behind at the target's tile, the same way a Run-mode
// Crush does.
func (r *Resolver) applyHammerHitEntity(msg component.Msg) error {
	af, _ := r.ES.Fighter.Get(msg.Entity)
	df, ok := r.ES.Fighter.Get(msg.Target)
	if !ok {
		return fmt.Errorf("hammer target %d has no fighter: %w", msg.Target, simerr.Invariant)
	}
	df.HP -= df.EffectiveDamage(af.Power)
	r.ES.Fighter.Set(msg.Target, df)
	if df.HP > 0 {
		return nil
	}

	r.killEntity(msg.Target)
	if pos, ok := r.ES.Position.Get(msg.Target); ok {
		if tile, ok := r.Map.At(pos.Pos.X, pos.Pos.Y); ok {
			tile.Surface = mapgrid.SurfaceRubble
			r.Map.Set(pos.Pos.X, pos.Pos.Y, tile)
		}
	}
	if df.OnDeath == component.OnDeathPlayer {
		r.Log.Log(component.Msg{Kind: component.MsgPlayerDeath, Entity: msg.Target})
	}
	return nil
}

func (r *Resolver) applyGameState(msg component.Msg) error {
	switch msg.State {
	case component.GameStatePlaying, component.GameStateWin, component.GameStateLose,
		component.GameStateInventory, component.GameStateSelection, component.GameStateSkillMenu,
		component.GameStateClassMenu, component.GameStateConfirmQuit:
		r.PendingState, r.PendingStateSet = msg.State, true
		return nil
	default:
		// Unmapped GameState variants are a documented no-op (spec's
		// resolved open question), never a panic.
		return nil
	}
}

func (r *Resolver) occupantAt(p core.Point) (core.Entity, bool) {
	for _, id := range r.ES.Position.All() {
		pos, _ := r.ES.Position.Get(id)
		if pos.Pos != p {
			continue
		}
		if b, ok := r.ES.Blocks.Get(id); ok && b.Value {
			return id, true
		}
	}
	return core.NoEntity, false
}

// occupancyView adapts the Entity Store to movement.Occupancy without
// the movement package needing to import engine.
type occupancyView struct {
	es *engine.EntityStore
}

func (o occupancyView) BlockingEntityAt(p core.Point) (core.Entity, bool) {
	for _, id := range o.es.Position.All() {
		pos, _ := o.es.Position.Get(id)
		if pos.Pos != p {
			continue
		}
		if b, ok := o.es.Blocks.Get(id); ok && b.Value {
			return id, true
		}
	}
	return core.NoEntity, false
}
