package ai

import (
	"testing"

	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
	"github.com/duskforge/dungeonturn/engine"
	"github.com/duskforge/dungeonturn/mapgrid"
)

func newWorld() (*engine.EntityStore, *mapgrid.Map) {
	return engine.NewEntityStore(), mapgrid.NewEmpty(20, 20)
}

func TestPlanOneIdleHearsSoundWithinRadius(t *testing.T) {
	es, m := newWorld()
	gol := es.Create()
	es.Position.Set(gol, component.Position{Pos: core.Point{X: 5, Y: 5}})
	es.AI.Set(gol, component.AI{})
	es.Status.Set(gol, component.Status{Alive: true})
	es.Behavior.Set(gol, component.Idle())
	es.Perception.Set(gol, component.Perception{HearingRadius: 4, SightRadius: 6})

	sounds := []core.Point{{X: 7, Y: 5}}
	PlanAll(es, m, sounds, engine.NewRNG(1))

	act, _ := es.Action.Get(gol)
	if act.Kind != component.ActionStateChange || act.NewBehavior.Kind != component.BehaviorInvestigating {
		t.Fatalf("got %+v, want a StateChange to Investigating", act)
	}
	if act.NewBehavior.Pos != (core.Point{X: 7, Y: 5}) {
		t.Fatalf("investigate pos = %v, want the sound source", act.NewBehavior.Pos)
	}
}

func TestPlanOneIdleIgnoresDistantSound(t *testing.T) {
	es, m := newWorld()
	gol := es.Create()
	es.Position.Set(gol, component.Position{Pos: core.Point{X: 5, Y: 5}})
	es.AI.Set(gol, component.AI{})
	es.Status.Set(gol, component.Status{Alive: true})
	es.Behavior.Set(gol, component.Idle())
	es.Perception.Set(gol, component.Perception{HearingRadius: 2, SightRadius: 6})

	PlanAll(es, m, []core.Point{{X: 19, Y: 19}}, engine.NewRNG(1))

	act, _ := es.Action.Get(gol)
	if act.Kind != component.ActionPass {
		t.Fatalf("got %+v, want Pass", act)
	}
}

func TestPlanOneInvestigatingAcquiresVisiblePlayer(t *testing.T) {
	es, m := newWorld()
	player := es.Create()
	es.Position.Set(player, component.Position{Pos: core.Point{X: 5, Y: 8}})
	es.Status.Set(player, component.Status{Alive: true})
	es.Name.Set(player, component.NamePlayer)

	gol := es.Create()
	es.Position.Set(gol, component.Position{Pos: core.Point{X: 5, Y: 5}})
	es.AI.Set(gol, component.AI{})
	es.Status.Set(gol, component.Status{Alive: true})
	es.Behavior.Set(gol, component.Investigating(core.Point{X: 9, Y: 9}))
	es.Perception.Set(gol, component.Perception{HearingRadius: 4, SightRadius: 6})

	PlanAll(es, m, nil, engine.NewRNG(1))

	act, _ := es.Action.Get(gol)
	if act.Kind != component.ActionStateChange || act.NewBehavior.Kind != component.BehaviorAttacking {
		t.Fatalf("got %+v, want a StateChange to Attacking", act)
	}
	if act.NewBehavior.Target != player {
		t.Fatalf("target = %v, want player %v", act.NewBehavior.Target, player)
	}
}

func TestPlanOneInvestigatingReachedPosGoesIdle(t *testing.T) {
	es, m := newWorld()
	gol := es.Create()
	es.Position.Set(gol, component.Position{Pos: core.Point{X: 5, Y: 5}})
	es.AI.Set(gol, component.AI{})
	es.Status.Set(gol, component.Status{Alive: true})
	es.Behavior.Set(gol, component.Investigating(core.Point{X: 5, Y: 5}))
	es.Perception.Set(gol, component.Perception{HearingRadius: 4, SightRadius: 6})

	PlanAll(es, m, nil, engine.NewRNG(1))

	act, _ := es.Action.Get(gol)
	if act.Kind != component.ActionStateChange || act.NewBehavior.Kind != component.BehaviorIdle {
		t.Fatalf("got %+v, want a StateChange to Idle", act)
	}
}

func TestPlanOneAttackingAdjacentTargetAttacks(t *testing.T) {
	es, m := newWorld()
	player := es.Create()
	es.Position.Set(player, component.Position{Pos: core.Point{X: 6, Y: 5}})
	es.Status.Set(player, component.Status{Alive: true})

	gol := es.Create()
	es.Position.Set(gol, component.Position{Pos: core.Point{X: 5, Y: 5}})
	es.AI.Set(gol, component.AI{})
	es.Status.Set(gol, component.Status{Alive: true})
	es.Behavior.Set(gol, component.Attacking(player, core.Point{X: 6, Y: 5}))
	es.Perception.Set(gol, component.Perception{HearingRadius: 4, SightRadius: 6})

	PlanAll(es, m, nil, engine.NewRNG(1))

	act, _ := es.Action.Get(gol)
	if act.Kind != component.ActionAttack || act.Target != player {
		t.Fatalf("got %+v, want an Attack on the player", act)
	}
}

func TestPlanOneAttackingDanglingTargetDemotes(t *testing.T) {
	es, m := newWorld()
	gol := es.Create()
	es.Position.Set(gol, component.Position{Pos: core.Point{X: 5, Y: 5}})
	es.AI.Set(gol, component.AI{})
	es.Status.Set(gol, component.Status{Alive: true})
	dead := core.Entity(999)
	es.Behavior.Set(gol, component.Attacking(dead, core.Point{X: 8, Y: 8}))
	es.Perception.Set(gol, component.Perception{HearingRadius: 4, SightRadius: 6})

	PlanAll(es, m, nil, engine.NewRNG(1))

	act, _ := es.Action.Get(gol)
	if act.Kind != component.ActionStateChange || act.NewBehavior.Kind != component.BehaviorInvestigating {
		t.Fatalf("got %+v, want a StateChange to Investigating(last_seen)", act)
	}
	if act.NewBehavior.Pos != (core.Point{X: 8, Y: 8}) {
		t.Fatalf("demoted pos = %v, want last_seen", act.NewBehavior.Pos)
	}
}

func TestPlanOneFrozenEntityPasses(t *testing.T) {
	es, m := newWorld()
	gol := es.Create()
	es.Position.Set(gol, component.Position{Pos: core.Point{X: 5, Y: 5}})
	es.AI.Set(gol, component.AI{})
	es.Status.Set(gol, component.Status{Alive: true, Frozen: 2})
	es.Behavior.Set(gol, component.Idle())
	es.Perception.Set(gol, component.Perception{HearingRadius: 4, SightRadius: 6})

	PlanAll(es, m, []core.Point{{X: 5, Y: 6}}, engine.NewRNG(1))

	act, _ := es.Action.Get(gol)
	if act.Kind != component.ActionPass {
		t.Fatalf("got %+v, want Pass while frozen", act)
	}
}

func TestReplanIfStateChangeAppliesBehaviorAndReplans(t *testing.T) {
	es, m := newWorld()
	gol := es.Create()
	es.Position.Set(gol, component.Position{Pos: core.Point{X: 5, Y: 5}})
	es.AI.Set(gol, component.AI{})
	es.Status.Set(gol, component.Status{Alive: true})
	es.Behavior.Set(gol, component.Idle())
	es.Perception.Set(gol, component.Perception{HearingRadius: 4, SightRadius: 6})

	sounds := []core.Point{{X: 5, Y: 5}}
	PlanAll(es, m, sounds, engine.NewRNG(1))

	fresh := ReplanIfStateChange(es, m, sounds, engine.NewRNG(1), gol)

	beh, _ := es.Behavior.Get(gol)
	if beh.Kind != component.BehaviorInvestigating {
		t.Fatalf("behavior = %+v, want Investigating committed immediately", beh)
	}
	// Already at the investigate position (sound source == self pos),
	// so the replan should immediately resolve to Idle rather than a
	// wasted Move(0,0) turn.
	if fresh.Kind != component.ActionStateChange || fresh.NewBehavior.Kind != component.BehaviorIdle {
		t.Fatalf("got %+v, want the replan to resolve straight back to Idle", fresh)
	}
}
