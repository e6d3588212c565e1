// Package metrics collects prometheus counters/gauges for the turn
// stepper and effect resolver, scraped by httpapi's /metrics endpoint.
// Grounded on fight-club-go's package-level promauto.New* metric
// declarations (internal/api/observability.go); this core has no
// render-loop timings to track, so only turn/message/AI/invariant
// counters are carried over.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TurnCount is the game's current turn_count, mirrored as a gauge
	// so a scrape sees the latest value rather than a running total.
	TurnCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dungeonturn_turn_count",
		Help: "Current turn_count of the active game.",
	})

	// MessagesResolvedTotal counts every Msg the Effect Resolver has
	// applied, across all Run calls.
	MessagesResolvedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dungeonturn_messages_resolved_total",
		Help: "Total messages applied by the effect resolver.",
	})

	// AIReplansTotal counts the pass-2 replans the Turn Stepper issued
	// (an AI whose first-pass action was a StateChange). Pass-3
	// replans in ai.ReplanStateChanges are not counted.
	AIReplansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dungeonturn_ai_replans_total",
		Help: "Total AI behavior replans triggered by a StateChange.",
	})

	// InvariantViolationsTotal counts every time Resolver.Run aborted
	// on an InvariantViolation.
	InvariantViolationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dungeonturn_invariant_violations_total",
		Help: "Total fatal InvariantViolation aborts.",
	})

	// UnavailableObservationsTotal counts every non-fatal error the
	// resolver converted into a logged MsgUnavailable instead of
	// propagating.
	UnavailableObservationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dungeonturn_unavailable_observations_total",
		Help: "Total non-fatal errors converted to MsgUnavailable observations.",
	})
)
