package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrementIndependently(t *testing.T) {
	before := testutil.ToFloat64(MessagesResolvedTotal)
	MessagesResolvedTotal.Inc()
	after := testutil.ToFloat64(MessagesResolvedTotal)
	if after != before+1 {
		t.Fatalf("MessagesResolvedTotal = %v, want %v", after, before+1)
	}

	beforeInv := testutil.ToFloat64(InvariantViolationsTotal)
	InvariantViolationsTotal.Inc()
	if got := testutil.ToFloat64(InvariantViolationsTotal); got != beforeInv+1 {
		t.Fatalf("InvariantViolationsTotal = %v, want %v", got, beforeInv+1)
	}
}

func TestTurnCountGaugeReflectsLatestSet(t *testing.T) {
	TurnCount.Set(7)
	if got := testutil.ToFloat64(TurnCount); got != 7 {
		t.Fatalf("TurnCount = %v, want 7", got)
	}
	TurnCount.Set(3)
	if got := testutil.ToFloat64(TurnCount); got != 3 {
		t.Fatalf("TurnCount = %v, want 3 after re-Set", got)
	}
}
