package engine

import "github.com/duskforge/dungeonturn/component"

// MessageLog is two FIFOs over the same Msg values: Main is drained
// by the Effect Resolver to fixed point; Turn is preserved until
// cleared at the top of the next player turn and is what display and
// tests read. Grounded on the teacher's engine/events.go event-queue
// doc style, adapted from a lock-free ring buffer to a plain slice
// FIFO: spec.md §5 makes the core single-threaded, so there is no
// producer/consumer race to defend the ring buffer against.
type MessageLog struct {
	main []component.Msg
	turn []component.Msg
}

// NewMessageLog returns an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Log appends m to the tail of both queues.
func (l *MessageLog) Log(m component.Msg) {
	l.main = append(l.main, m)
	l.turn = append(l.turn, m)
}

// LogFront prepends m to both queues, used sparingly for priority
// effects (e.g. a death message that must precede further damage to
// the same entity in the same tick).
func (l *MessageLog) LogFront(m component.Msg) {
	l.main = append([]component.Msg{m}, l.main...)
	l.turn = append([]component.Msg{m}, l.turn...)
}

// Pop removes and returns the head of the main queue. Only the main
// queue is popped — Turn is a durable record until Clear.
func (l *MessageLog) Pop() (component.Msg, bool) {
	if len(l.main) == 0 {
		return component.Msg{}, false
	}
	m := l.main[0]
	l.main = l.main[1:]
	return m, true
}

// Empty reports whether the main queue has drained.
func (l *MessageLog) Empty() bool {
	return len(l.main) == 0
}

// Clear empties the turn-scoped log; called at the top of each player
// turn.
func (l *MessageLog) Clear() {
	l.turn = l.turn[:0]
}

// TurnMessages returns the turn-scoped log's contents in FIFO order. The
// caller must not mutate the returned slice.
func (l *MessageLog) TurnMessages() []component.Msg {
	return l.turn
}
