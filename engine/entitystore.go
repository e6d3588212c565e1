package engine

import (
	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
)

// EntityStore is the collection of parallel sparse attribute stores
// that together make up every entity in the world, grounded on the
// teacher's ComponentStore aggregation (engine/component_store.go)
// and World id allocation (engine/world.go).
type EntityStore struct {
	nextID core.Entity

	Position      *Store[component.Position]
	Name          *Store[component.Name]
	Glyph         *Store[component.Glyph]
	Blocks        *Store[component.Blocks]
	Status        *Store[component.Status]
	Fighter       *Store[component.Fighter]
	AI            *Store[component.AI]
	Behavior      *Store[component.Behavior]
	Perception    *Store[component.Perception]
	Inventory     *Store[component.Inventory]
	Momentum      *Store[component.Momentum]
	MoveMode      *Store[component.MoveMode]
	MovementReach *Store[component.Reach]
	AttackReach   *Store[component.Reach]
	Animation     *Store[component.Animation]
	CountDown     *Store[component.CountDown]
	NeedsRemoval  *Store[component.NeedsRemoval]
	Limbo         *Store[component.Limbo]
	Action        *Store[component.Action]
	Messages      *Store[component.MessageScratch]
}

// NewEntityStore allocates an empty store with id generation starting
// at 1 (0 is core.NoEntity).
func NewEntityStore() *EntityStore {
	return &EntityStore{
		nextID:        1,
		Position:      NewStore[component.Position](),
		Name:          NewStore[component.Name](),
		Glyph:         NewStore[component.Glyph](),
		Blocks:        NewStore[component.Blocks](),
		Status:        NewStore[component.Status](),
		Fighter:       NewStore[component.Fighter](),
		AI:            NewStore[component.AI](),
		Behavior:      NewStore[component.Behavior](),
		Perception:    NewStore[component.Perception](),
		Inventory:     NewStore[component.Inventory](),
		Momentum:      NewStore[component.Momentum](),
		MoveMode:      NewStore[component.MoveMode](),
		MovementReach: NewStore[component.Reach](),
		AttackReach:   NewStore[component.Reach](),
		Animation:     NewStore[component.Animation](),
		CountDown:     NewStore[component.CountDown](),
		NeedsRemoval:  NewStore[component.NeedsRemoval](),
		Limbo:         NewStore[component.Limbo](),
		Action:        NewStore[component.Action](),
		Messages:      NewStore[component.MessageScratch](),
	}
}

// Create allocates a fresh entity id with no attributes attached.
func (es *EntityStore) Create() core.Entity {
	id := es.nextID
	es.nextID++
	return id
}

// Remove deletes every attribute entry for id across all stores.
// Subsequent lookups on id fail gracefully: presence tests return
// false, they never panic.
func (es *EntityStore) Remove(id core.Entity) {
	es.Position.Remove(id)
	es.Name.Remove(id)
	es.Glyph.Remove(id)
	es.Blocks.Remove(id)
	es.Status.Remove(id)
	es.Fighter.Remove(id)
	es.AI.Remove(id)
	es.Behavior.Remove(id)
	es.Perception.Remove(id)
	es.Inventory.Remove(id)
	es.Momentum.Remove(id)
	es.MoveMode.Remove(id)
	es.MovementReach.Remove(id)
	es.AttackReach.Remove(id)
	es.Animation.Remove(id)
	es.CountDown.Remove(id)
	es.NeedsRemoval.Remove(id)
	es.Limbo.Remove(id)
	es.Action.Remove(id)
	es.Messages.Remove(id)
}

// Ids returns every live entity, in stable creation order (Position
// is the one attribute every placed entity is guaranteed to carry).
func (es *EntityStore) Ids() []core.Entity {
	return es.Position.All()
}

// FindByName returns the first live entity with the given Name, or
// core.NoEntity if none exists.
func (es *EntityStore) FindByName(name component.Name) (core.Entity, bool) {
	for _, e := range es.Name.All() {
		if n, _ := es.Name.Get(e); n == name {
			return e, true
		}
	}
	return core.NoEntity, false
}

// FindPlayer is a convenience wrapper over FindByName(NamePlayer).
func (es *EntityStore) FindPlayer() (core.Entity, bool) {
	return es.FindByName(component.NamePlayer)
}

// FindExit is a convenience wrapper over FindByName(NameExit).
func (es *EntityStore) FindExit() (core.Entity, bool) {
	return es.FindByName(component.NameExit)
}

// IsInInventory searches holder's inventory for an item entity whose
// Name attribute matches kind, returning it if found.
func (es *EntityStore) IsInInventory(holder core.Entity, kind component.Name) (core.Entity, bool) {
	inv, ok := es.Inventory.Get(holder)
	if !ok {
		return core.NoEntity, false
	}
	for _, item := range inv.Items() {
		if n, ok := es.Name.Get(item); ok && n == kind {
			return item, true
		}
	}
	return core.NoEntity, false
}

// RemoveItem removes item from holder's inventory. It does not
// destroy the item entity — callers that mean to discard it must
// call Remove separately.
func (es *EntityStore) RemoveItem(holder, item core.Entity) bool {
	inv, ok := es.Inventory.Get(holder)
	if !ok {
		return false
	}
	removed := inv.Remove(item)
	es.Inventory.Set(holder, inv)
	return removed
}
