package component

import "github.com/duskforge/dungeonturn/core"

// Inventory is an ordered deque of held item entities. Tools (e.g.
// the hammer) are pushed to the front so they are the default
// UseItem target; consumables (e.g. the stone) are pushed to the
// back. Held items have no meaningful Position; it is only restored
// on drop.
type Inventory struct {
	items []core.Entity
}

// PushFront inserts an item as the new head of the deque.
func (inv *Inventory) PushFront(item core.Entity) {
	inv.items = append([]core.Entity{item}, inv.items...)
}

// PushBack appends an item to the tail of the deque.
func (inv *Inventory) PushBack(item core.Entity) {
	inv.items = append(inv.items, item)
}

// Remove deletes the first occurrence of item from the deque, if
// present. It does not destroy the item entity.
func (inv *Inventory) Remove(item core.Entity) bool {
	for i, e := range inv.items {
		if e == item {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns the deque's contents head-to-tail. The caller must
// not mutate the returned slice.
func (inv Inventory) Items() []core.Entity {
	return inv.items
}

// Len reports the number of held items.
func (inv Inventory) Len() int {
	return len(inv.items)
}
