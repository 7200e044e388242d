package engine_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moneymap/moneymap-go/internal/domain"
	"github.com/moneymap/moneymap-go/internal/engine"
)

func goal(name string, target, saved, weight float64, deadline *time.Time) *domain.Goal {
	return &domain.Goal{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: floatPtr(target),
		AmountSaved:  saved,
		Weight:       weight,
		Deadline:     deadline,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDistribute_EqualSplit(t *testing.T) {
	today := date(2026, 3, 1)
	deadline := timePtr(date(2026, 3, 11))
	a := goal("a", 1000, 0, 1, deadline)
	b := goal("b", 1000, 0, 1, deadline)

	alloc, err := engine.Distribute([]*domain.Goal{a, b}, 50, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(alloc[a.ID], 25) || !approxEqual(alloc[b.ID], 25) {
		t.Errorf("alloc = %v, want 25/25", alloc)
	}
}

func TestDistribute_CapsAtRemaining(t *testing.T) {
	today := date(2026, 3, 1)
	deadline := timePtr(date(2026, 3, 11))
	nearlyDone := goal("nearly done", 100, 90, 1, deadline)

	alloc, err := engine.Distribute([]*domain.Goal{nearlyDone}, 1000, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(alloc[nearlyDone.ID], 10) {
		t.Errorf("alloc = %.2f, want 10 (capped at remaining)", alloc[nearlyDone.ID])
	}
}

func TestDistribute_CapSurplusNotRedistributed(t *testing.T) {
	today := date(2026, 3, 1)
	deadline := timePtr(date(2026, 3, 11))
	small := goal("small", 100, 95, 1, deadline)
	large := goal("large", 10000, 0, 1, deadline)

	alloc, err := engine.Distribute([]*domain.Goal{small, large}, 100, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(alloc[small.ID], 5) {
		t.Errorf("small alloc = %.2f, want 5", alloc[small.ID])
	}
	// Equal weights: large gets its 50 share, not the surplus from small.
	if !approxEqual(alloc[large.ID], 50) {
		t.Errorf("large alloc = %.2f, want 50 (capped surplus goes unallocated)", alloc[large.ID])
	}
}

func TestDistribute_ExcludesFundedGoals(t *testing.T) {
	today := date(2026, 3, 1)
	deadline := timePtr(date(2026, 3, 11))
	done := goal("done", 500, 500, 1, deadline)
	open := goal("open", 500, 0, 1, deadline)

	alloc, err := engine.Distribute([]*domain.Goal{done, open}, 100, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := alloc[done.ID]; ok {
		t.Error("fully funded goal must receive nothing")
	}
	if !approxEqual(alloc[open.ID], 100) {
		t.Errorf("open goal alloc = %.2f, want the full 100", alloc[open.ID])
	}
}

func TestDistribute_UrgencyFavorsNearerDeadline(t *testing.T) {
	today := date(2026, 3, 1)
	soon := goal("soon", 1000, 0, 1, timePtr(date(2026, 3, 11)))   // 10 days, urgency 0.1
	later := goal("later", 1000, 0, 1, timePtr(date(2026, 3, 31))) // 30 days, urgency 1/30

	alloc, err := engine.Distribute([]*domain.Goal{soon, later}, 400, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Shares 0.1 : 1/30 = 3 : 1.
	if !approxEqual(alloc[soon.ID], 300) {
		t.Errorf("soon alloc = %.4f, want 300", alloc[soon.ID])
	}
	if !approxEqual(alloc[later.ID], 100) {
		t.Errorf("later alloc = %.4f, want 100", alloc[later.ID])
	}
}

func TestDistribute_OverdueDeadlineMaxUrgency(t *testing.T) {
	today := date(2026, 3, 10)
	overdue := goal("overdue", 1000, 0, 1, timePtr(date(2026, 3, 1)))
	soon := goal("soon", 1000, 0, 1, timePtr(date(2026, 3, 12)))

	alloc, err := engine.Distribute([]*domain.Goal{overdue, soon}, 300, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Urgencies 1.0 and 0.5: shares 200 and 100.
	if !approxEqual(alloc[overdue.ID], 200) {
		t.Errorf("overdue alloc = %.4f, want 200", alloc[overdue.ID])
	}
	if !approxEqual(alloc[soon.ID], 100) {
		t.Errorf("soon alloc = %.4f, want 100", alloc[soon.ID])
	}
}

func TestDistribute_NoDeadlineMaxUrgency(t *testing.T) {
	today := date(2026, 3, 1)
	open := goal("open-ended", 1000, 0, 1, nil)

	alloc, err := engine.Distribute([]*domain.Goal{open}, 100, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(alloc[open.ID], 100) {
		t.Errorf("alloc = %.2f, want 100", alloc[open.ID])
	}
}

func TestDistribute_PriorityWeight(t *testing.T) {
	today := date(2026, 3, 1)
	deadline := timePtr(date(2026, 3, 11))
	heavy := goal("heavy", 1000, 0, 3, deadline)
	light := goal("light", 1000, 0, 1, deadline)

	alloc, err := engine.Distribute([]*domain.Goal{heavy, light}, 400, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(alloc[heavy.ID], 300) || !approxEqual(alloc[light.ID], 100) {
		t.Errorf("alloc = %v, want 300/100", alloc)
	}
}

func TestDistribute_NegativeTotalRejected(t *testing.T) {
	_, err := engine.Distribute(nil, -1, date(2026, 3, 1))
	if err == nil {
		t.Fatal("expected error for negative total")
	}
	var invalid *domain.ErrInvalidAmount
	if !errors.As(err, &invalid) {
		t.Errorf("error = %T, want *domain.ErrInvalidAmount", err)
	}
}

func TestDistribute_ZeroTotalAndEmptyInput(t *testing.T) {
	today := date(2026, 3, 1)

	alloc, err := engine.Distribute(nil, 100, today)
	if err != nil || len(alloc) != 0 {
		t.Errorf("no goals: alloc = %v, err = %v, want empty and nil", alloc, err)
	}

	g := goal("g", 1000, 0, 1, nil)
	alloc, err = engine.Distribute([]*domain.Goal{g}, 0, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(alloc[g.ID], 0) {
		t.Errorf("zero total must allocate zero, got %v", alloc)
	}
}
