package engine

import (
	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
)

// Stats is the config-surface-supplied per-entity stat block spec.md
// §6 names (hp, power, defense, hearing radius, sight radius). Each
// named factory takes one, so the same factory produces different
// strength monsters across difficulty tiers without code changes.
type Stats struct {
	HP            int
	Power         int
	Defense       int
	HearingRadius int
	SightRadius   int
}

// MakePlayer spawns the single Player entity at pos.
func (es *EntityStore) MakePlayer(pos core.Point, s Stats) core.Entity {
	id := es.Create()
	es.Position.Set(id, component.Position{Pos: pos})
	es.Name.Set(id, component.NamePlayer)
	es.Glyph.Set(id, component.Glyph{Rune: '@'})
	es.Blocks.Set(id, component.Blocks{Value: true})
	es.Status.Set(id, component.Status{Alive: true})
	es.Fighter.Set(id, component.Fighter{HP: s.HP, MaxHP: s.HP, Power: s.Power, Defense: s.Defense, OnDeath: component.OnDeathPlayer})
	es.Momentum.Set(id, component.Momentum{Max: component.MoveModeSneak.MaxMomentum()})
	es.MoveMode.Set(id, component.MoveModeSneak)
	es.MovementReach.Set(id, component.Reach{Kind: component.ReachSingle, N: 1})
	es.AttackReach.Set(id, component.Reach{Kind: component.ReachSingle, N: 1})
	es.Inventory.Set(id, component.Inventory{})
	return id
}

// MakeGol spawns a Gol: a melee monster that hears, hunts and attacks.
func (es *EntityStore) MakeGol(pos core.Point, s Stats) core.Entity {
	return es.makeMonster(pos, s, component.NameGol, 'g')
}

// MakePawn spawns a Pawn: a weaker melee monster with the same AI
// shape as a Gol.
func (es *EntityStore) MakePawn(pos core.Point, s Stats) core.Entity {
	return es.makeMonster(pos, s, component.NamePawn, 'p')
}

// MakeMouse spawns a Mouse: a skittish, harmless background monster.
func (es *EntityStore) MakeMouse(pos core.Point, s Stats) core.Entity {
	return es.makeMonster(pos, s, component.NameMouse, 'm')
}

func (es *EntityStore) makeMonster(pos core.Point, s Stats, name component.Name, glyph rune) core.Entity {
	id := es.Create()
	es.Position.Set(id, component.Position{Pos: pos})
	es.Name.Set(id, name)
	es.Glyph.Set(id, component.Glyph{Rune: glyph})
	es.Blocks.Set(id, component.Blocks{Value: true})
	es.Status.Set(id, component.Status{Alive: true})
	es.Fighter.Set(id, component.Fighter{HP: s.HP, MaxHP: s.HP, Power: s.Power, Defense: s.Defense, OnDeath: component.OnDeathMonster})
	es.AI.Set(id, component.AI{})
	es.Behavior.Set(id, component.Idle())
	es.Perception.Set(id, component.Perception{HearingRadius: s.HearingRadius, SightRadius: s.SightRadius})
	es.MovementReach.Set(id, component.Reach{Kind: component.ReachSingle, N: 1})
	es.AttackReach.Set(id, component.Reach{Kind: component.ReachSingle, N: 1})
	return id
}

// MakeStone spawns a Stone: a throwable consumable item, placed on
// the map until picked up.
func (es *EntityStore) MakeStone(pos core.Point) core.Entity {
	id := es.Create()
	es.Position.Set(id, component.Position{Pos: pos})
	es.Name.Set(id, component.NameStone)
	es.Glyph.Set(id, component.Glyph{Rune: '*'})
	return id
}

// MakeHammer spawns a Hammer: a reusable tool item.
func (es *EntityStore) MakeHammer(pos core.Point) core.Entity {
	id := es.Create()
	es.Position.Set(id, component.Position{Pos: pos})
	es.Name.Set(id, component.NameHammer)
	es.Glyph.Set(id, component.Glyph{Rune: '/'})
	return id
}

// MakeGoal spawns the level's Goal item, the exit-condition prerequisite.
func (es *EntityStore) MakeGoal(pos core.Point) core.Entity {
	id := es.Create()
	es.Position.Set(id, component.Position{Pos: pos})
	es.Name.Set(id, component.NameGoal)
	es.Glyph.Set(id, component.Glyph{Rune: '!'})
	return id
}

// MakeExit spawns the level's Exit marker tile entity.
func (es *EntityStore) MakeExit(pos core.Point) core.Entity {
	id := es.Create()
	es.Position.Set(id, component.Position{Pos: pos})
	es.Name.Set(id, component.NameExit)
	es.Glyph.Set(id, component.Glyph{Rune: '>'})
	return id
}
