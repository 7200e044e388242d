package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneymap/moneymap-go/internal/domain"
)

// Distribute allocates total across goals using urgency-weighted
// proportional shares:
//
//	urgency  = 1/daysUntilDeadline, or 1.0 for a goal due today or overdue
//	weighted = urgency * priorityWeight
//	share    = weighted / sum(weighted)
//	amount   = min(remaining, share * total)
//
// Fully funded goals (remaining 0) are excluded and receive nothing; when
// nothing needs funding the result is an empty map. The remaining-amount
// cap is not redistributed within the same pass: capped surplus simply
// goes unallocated, and later passes direct more to the still-underfunded
// goals as funded ones drop out of the filter.
//
// A negative total is rejected with ErrInvalidAmount; zero is legal and
// yields all-zero allocations. The two-phase shape (sum all weights, then
// allocate per goal) is required: shares depend on the batch aggregate.
func Distribute(goals []*domain.Goal, total float64, today time.Time) (map[uuid.UUID]float64, error) {
	if total < 0 {
		return nil, &domain.ErrInvalidAmount{Field: "total", Amount: total}
	}

	type weighted struct {
		goal  *domain.Goal
		value float64
	}

	var candidates []weighted
	var totalWeight float64
	for _, g := range goals {
		if g.RemainingAmount() <= 0 {
			continue
		}
		urgency := 1.0
		if days := g.DaysUntilDeadline(today); days > 0 {
			urgency = 1.0 / float64(days)
		}
		value := urgency * g.WeightValue()
		candidates = append(candidates, weighted{goal: g, value: value})
		totalWeight += value
	}

	allocation := make(map[uuid.UUID]float64, len(candidates))
	if len(candidates) == 0 || totalWeight <= 0 {
		return allocation, nil
	}

	for _, c := range candidates {
		share := c.value / totalWeight
		amount := share * total
		if remaining := c.goal.RemainingAmount(); amount > remaining {
			amount = remaining
		}
		allocation[c.goal.ID] = amount
	}
	return allocation, nil
}
