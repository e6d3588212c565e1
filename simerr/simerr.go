// Package simerr defines the four error kinds spec.md §7 assigns to
// the simulation core. Plain fmt.Errorf wrapping against these
// sentinels, in the same no-framework style the teacher uses
// throughout engine/position.go and engine/spatial_transactions.go
// (which reach for stdlib wrapping rather than the pkg/errors
// dependency sitting unused in their own go.mod).
package simerr

import "errors"

// Invariant is a structural impossibility — e.g. a Moved message
// naming an entity with no Position attribute. Fatal: the turn
// stepper aborts the in-flight turn on this kind and nothing else.
var Invariant = errors.New("invariant violation")

// UserErr is an exit condition reached without its prerequisites
// (e.g. standing on the exit tile without the Goal item). Reported
// to the display collaborator; the turn proceeds as if the action
// had not happened.
var UserErr = errors.New("user error")

// Unavailable is an action that requires state the entity lacks
// (e.g. UseItem with an empty inventory). Silent no-op: the message
// is dropped, an Unavailable observation is logged to the turn
// message stream, and turn_count is unaffected.
var Unavailable = errors.New("unavailable")

// IO is a construction-time failure (missing map file or config).
var IO = errors.New("io error")

// Is reports whether err wraps the given sentinel kind.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
