package component

// Status tracks liveness and temporary incapacitation.
type Status struct {
	Alive  bool
	Frozen int // turns remaining before the entity may act again
}

// IsFrozen reports whether the entity should skip AI planning this turn.
func (s Status) IsFrozen() bool {
	return s.Frozen > 0
}
