// Package sim is the Turn Stepper: it owns the Game value (spec.md
// §5's single owner of the Entity Store, Map, Message Log and RNG)
// and orchestrates one player action through resolve -> AI loop ->
// housekeeping, exactly as spec.md §4.6's pseudocode describes.
// Grounded on the teacher's engine/world.go Update-loop dispatch,
// rewired from a per-frame continuous loop to a per-input discrete
// step.
package sim

import (
	"github.com/duskforge/dungeonturn/ai"
	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
	"github.com/duskforge/dungeonturn/effects"
	"github.com/duskforge/dungeonturn/engine"
	"github.com/duskforge/dungeonturn/mapgrid"
	"github.com/duskforge/dungeonturn/metrics"
)

// Game is the top-level owner spec.md §5 requires: the Entity Store,
// Map, Message Log and RNG live here and nowhere else.
type Game struct {
	ES    *engine.EntityStore
	Map   *mapgrid.Map
	Log   *engine.MessageLog
	RNG   *engine.RNG
	State component.GameStateKind

	TurnCount int
	LevelNum  int
	GodMode   bool
}

// New constructs a Game over an already-populated Entity Store and
// Map (the map file parser and level factories are external to the
// core, per spec.md §6).
func New(es *engine.EntityStore, m *mapgrid.Map, seed uint32) *Game {
	return &Game{
		ES:    es,
		Map:   m,
		Log:   engine.NewMessageLog(),
		RNG:   engine.NewRNG(seed),
		State: component.GameStatePlaying,
	}
}

// Step runs one input through the pipeline spec.md §4.6 pseudocode
// describes. It returns only on an InvariantViolation (fatal; the
// turn aborts in-flight). player is the acting entity the action
// belongs to — ordinarily the Player, but menu states may route
// differently at the caller's discretion.
func (g *Game) Step(player core.Entity, action component.Action) error {
	if !g.State.TakesTurn() {
		return nil
	}

	g.Log.Clear()
	g.Log.Log(component.Msg{Kind: component.MsgAction, Entity: player, Action: action})

	r := effects.New(g.ES, g.Map, g.Log, g.RNG)
	if err := r.Run(); err != nil {
		return err
	}
	if r.PendingStateSet {
		g.State = r.PendingState
	}
	// An Unavailable observation from the player's own action leaves
	// turn_count unchanged (see simerr.Unavailable).
	unavailable := false
	for _, msg := range g.Log.TurnMessages() {
		if msg.Kind == component.MsgUnavailable {
			unavailable = true
		}
	}
	if g.exitConditionMet() {
		g.State = component.GameStateWin
		return nil
	}

	playerAlive := isAlive(g.ES, player)
	halfTurn := isHalfTurn(g.ES, player)

	if !halfTurn && playerAlive {
		sounds := append([]core.Point(nil), r.Sounds...)
		ai.PlanAll(g.ES, g.Map, sounds, g.RNG)

		for _, id := range g.ES.AI.All() {
			if g.ES.Limbo.Has(id) || !isAlive(g.ES, id) {
				continue
			}
			before, _ := g.ES.Action.Get(id)
			act := ai.ReplanIfStateChange(g.ES, g.Map, sounds, g.RNG, id)
			if before.Kind == component.ActionStateChange {
				metrics.AIReplansTotal.Inc()
			}
			g.Log.Log(component.Msg{Kind: component.MsgAction, Entity: id, Action: act})

			aiRun := effects.New(g.ES, g.Map, g.Log, g.RNG)
			if err := aiRun.Run(); err != nil {
				return err
			}
			sounds = append(sounds, aiRun.Sounds...)
			cleanupDeadFighters(g.ES)
		}

		ai.ReplanStateChanges(g.ES, g.Map, sounds, g.RNG)
	}

	g.Log.Log(component.Msg{Kind: component.MsgPlayerTurn})
	housekeeping := effects.New(g.ES, g.Map, g.Log, g.RNG)
	if err := housekeeping.Run(); err != nil {
		return err
	}

	g.decrementTimers()

	if !halfTurn && !unavailable {
		g.TurnCount++
	}
	metrics.TurnCount.Set(float64(g.TurnCount))
	return nil
}

// exitConditionMet reports whether the player stands on the Exit tile
// while carrying the Goal item.
func (g *Game) exitConditionMet() bool {
	player, ok := g.ES.FindPlayer()
	if !ok {
		return false
	}
	exit, ok := g.ES.FindExit()
	if !ok {
		return false
	}
	ppos, ok := g.ES.Position.Get(player)
	if !ok {
		return false
	}
	epos, ok := g.ES.Position.Get(exit)
	if !ok || ppos.Pos != epos.Pos {
		return false
	}
	_, hasGoal := g.ES.IsInInventory(player, component.NameGoal)
	return hasGoal
}

// decrementTimers is the housekeeping pass: status.frozen and
// count_down tick down, and entities whose count_down has reached
// zero or whose needs_removal is set with an empty animation queue
// are removed from the store.
func (g *Game) decrementTimers() {
	for _, id := range g.ES.Status.All() {
		st, _ := g.ES.Status.Get(id)
		if st.Frozen > 0 {
			st.Frozen--
			g.ES.Status.Set(id, st)
		}
	}

	var toRemove []core.Entity
	for _, id := range g.ES.CountDown.All() {
		cd, _ := g.ES.CountDown.Get(id)
		if cd.Turns == 0 {
			// Already reached zero on an earlier pass: remove now, one
			// housekeeping pass after it hit zero, rather than on the
			// same pass that decrements it to zero.
			toRemove = append(toRemove, id)
			continue
		}
		cd.Turns--
		g.ES.CountDown.Set(id, cd)
	}
	for _, id := range g.ES.NeedsRemoval.All() {
		nr, _ := g.ES.NeedsRemoval.Get(id)
		if !nr.Value {
			continue
		}
		anim, ok := g.ES.Animation.Get(id)
		if !ok || anim.Done() {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		g.ES.Remove(id)
	}
}

func isAlive(es *engine.EntityStore, id core.Entity) bool {
	st, ok := es.Status.Get(id)
	return ok && st.Alive
}

// isHalfTurn reads the actor's momentum after the move has already
// been resolved: TookHalfTurn stays true exactly while the actor is
// mid compound-turn (see effects.Resolver's applyMoved).
func isHalfTurn(es *engine.EntityStore, id core.Entity) bool {
	mom, ok := es.Momentum.Get(id)
	return ok && mom.TookHalfTurn
}

// cleanupDeadFighters drops the Fighter attribute from any entity
// status has already marked dead, per spec.md §3 invariant 3 ("the
// fighter attribute may be removed on next housekeeping pass").
func cleanupDeadFighters(es *engine.EntityStore) {
	for _, id := range es.Fighter.All() {
		if st, ok := es.Status.Get(id); ok && !st.Alive {
			es.Fighter.Remove(id)
		}
	}
}
