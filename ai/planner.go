// Package ai is the AI Planner: per-entity Idle/Investigating/Attacking
// state machine plus the bounded three-pass planning loop spec.md §4.5
// describes. Grounded on the teacher's engine/fsm state-machine
// dispatch style (engine/fsm/*), rewired from the teacher's animation-
// and combo-timing states to this domain's perception-driven states.
package ai

import (
	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
	"github.com/duskforge/dungeonturn/engine"
	"github.com/duskforge/dungeonturn/mapgrid"
)

// MaxReplansPerTick bounds the pass-3 state-change replan chain, per
// spec.md §9's termination guarantee for the three-pass AI design.
const MaxReplansPerTick = 2

// PlanAll fills the `action` attribute for every AI entity not in
// Limbo — the planner's first pass; a frozen entity is given Pass.
// sounds lists the positions of
// every Sound message emitted earlier in the tick.
func PlanAll(es *engine.EntityStore, m *mapgrid.Map, sounds []core.Point, rng *engine.RNG) {
	for _, id := range es.AI.All() {
		if es.Limbo.Has(id) {
			continue
		}
		es.Action.Set(id, planOne(es, m, sounds, rng, id))
	}
}

// ReplanIfStateChange is pass 2: when id's just-planned action is a
// self state-change, the new behavior is committed immediately and id
// is replanned so the transition itself is not a wasted turn. It
// returns the action that should actually be executed this turn.
func ReplanIfStateChange(es *engine.EntityStore, m *mapgrid.Map, sounds []core.Point, rng *engine.RNG, id core.Entity) component.Action {
	act, ok := es.Action.Get(id)
	if !ok || act.Kind != component.ActionStateChange {
		return act
	}
	es.Behavior.Set(id, act.NewBehavior)
	fresh := planOne(es, m, sounds, rng, id)
	es.Action.Set(id, fresh)
	return fresh
}

// ReplanStateChanges is pass 3: once every AI entity has executed and
// effects have resolved, each gets one last chance to resolve a fresh
// self-transition so it is not left mid-transition at the top of the
// next turn. Each entity's chain is bounded at MaxReplansPerTick;
// a replan that is not itself a StateChange is discarded without
// being executed — pass 3 only ever finalizes behavior, never moves.
func ReplanStateChanges(es *engine.EntityStore, m *mapgrid.Map, sounds []core.Point, rng *engine.RNG) {
	for _, id := range es.AI.All() {
		if es.Limbo.Has(id) || !targetAlive(es, id) {
			continue
		}
		for n := 0; n < MaxReplansPerTick; n++ {
			act := planOne(es, m, sounds, rng, id)
			if act.Kind != component.ActionStateChange {
				break
			}
			es.Behavior.Set(id, act.NewBehavior)
		}
	}
}

// planOne runs the state machine for a single entity against the
// current world snapshot, returning the action it would take without
// mutating anything but reading es.Behavior/es.Action.
func planOne(es *engine.EntityStore, m *mapgrid.Map, sounds []core.Point, rng *engine.RNG, id core.Entity) component.Action {
	posAttr, ok := es.Position.Get(id)
	if !ok {
		return component.Pass()
	}
	pos := posAttr.Pos
	if status, ok := es.Status.Get(id); ok && status.IsFrozen() {
		return component.Pass()
	}
	perc, _ := es.Perception.Get(id)
	beh, _ := es.Behavior.Get(id)

	switch beh.Kind {
	case component.BehaviorIdle:
		if src, found := nearestSoundWithin(pos, sounds, perc.HearingRadius, rng); found {
			return component.StateChange(component.Investigating(src))
		}
		return component.Pass()

	case component.BehaviorInvestigating:
		if target, targetPos, found := acquireTarget(es, m, pos, perc); found {
			return component.StateChange(component.Attacking(target, targetPos))
		}
		if pos.Eq(beh.Pos) {
			return component.StateChange(component.Idle())
		}
		return stepToward(pos, beh.Pos)

	case component.BehaviorAttacking:
		if !targetAlive(es, beh.Target) {
			return component.StateChange(component.Investigating(beh.Pos))
		}
		targetAttr, _ := es.Position.Get(beh.Target)
		targetPos := targetAttr.Pos
		if !inFOV(m, pos, targetPos, perc.SightRadius) {
			return component.StateChange(component.Investigating(targetPos))
		}
		if pos.ChebyshevDistance(targetPos) <= 1 {
			return component.Attack(beh.Target, targetPos)
		}
		return stepToward(pos, targetPos)
	}
	return component.Pass()
}

// nearestSoundWithin finds the closest sound source within radius,
// breaking ties among equidistant candidates with the seeded RNG —
// spec.md §4.5's determinism requirement.
func nearestSoundWithin(pos core.Point, sounds []core.Point, radius int, rng *engine.RNG) (core.Point, bool) {
	best := -1
	var candidates []core.Point
	for _, s := range sounds {
		d := pos.ChebyshevDistance(s)
		if d > radius {
			continue
		}
		switch {
		case best == -1 || d < best:
			best = d
			candidates = append(candidates[:0], s)
		case d == best:
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return core.Point{}, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	return candidates[rng.Pick(len(candidates))], true
}

// acquireTarget reports whether the player is visible from pos. The
// player is the only entity an AI can acquire as a combat target.
func acquireTarget(es *engine.EntityStore, m *mapgrid.Map, pos core.Point, perc component.Perception) (core.Entity, core.Point, bool) {
	player, ok := es.FindPlayer()
	if !ok || !targetAlive(es, player) {
		return core.NoEntity, core.Point{}, false
	}
	ppos, ok := es.Position.Get(player)
	if !ok || !inFOV(m, pos, ppos.Pos, perc.SightRadius) {
		return core.NoEntity, core.Point{}, false
	}
	return player, ppos.Pos, true
}

// targetAlive validates a Behavior's stored target id is still a live
// entity — spec.md §9's dangling-reference liveness check.
func targetAlive(es *engine.EntityStore, id core.Entity) bool {
	if id == core.NoEntity {
		return false
	}
	st, ok := es.Status.Get(id)
	return ok && st.Alive
}

func inFOV(m *mapgrid.Map, from, to core.Point, radius int) bool {
	if from.ChebyshevDistance(to) > radius {
		return false
	}
	return m.HasLineOfSight(from, to)
}

func stepToward(from, to core.Point) component.Action {
	dx := core.Sign(to.X - from.X)
	dy := core.Sign(to.Y - from.Y)
	if dx == 0 && dy == 0 {
		return component.Pass()
	}
	return component.Move(component.Direction{DX: dx, DY: dy})
}
