package config

import (
	"time"

	"golang.org/x/time/rate"
)

// RepeatGate throttles a held-direction input's auto-repeat to
// repeat_delay seconds apart, per spec.md §6. Grounded on the pack's
// per-source rate.Limiter pattern (fight-club-go's IPRateLimiter and
// EventLog player limiter), narrowed to a single caller since input
// translation is single-threaded here.
type RepeatGate struct {
	limiter *rate.Limiter
}

// NewRepeatGate builds a gate that allows one event every
// repeatDelaySeconds, with a burst of 1 (the first press is never
// throttled).
func NewRepeatGate(repeatDelaySeconds float64) *RepeatGate {
	if repeatDelaySeconds <= 0 {
		return &RepeatGate{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	interval := time.Duration(repeatDelaySeconds * float64(time.Second))
	return &RepeatGate{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Allow reports whether a held-key repeat should be translated into a
// new input action right now.
func (g *RepeatGate) Allow() bool {
	return g.limiter.Allow()
}
