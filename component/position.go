package component

import "github.com/duskforge/dungeonturn/core"

// Position is the only attribute every live, placed entity carries.
// Inventory items may also have a Position in the store (where they
// last lay on the map; picking an item up does not change it, dropping
// it sets it to the holder's tile) but it is not consulted for
// collision while held.
type Position struct {
	Pos core.Point
}
