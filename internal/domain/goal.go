package domain

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================
// Savings Goals
// ============================================================

// Goal is a savings target competing for paycheck allocations. Weight is a
// priority multiplier defaulting to 1.0. AmountSaved is mutated by the
// caller after a distribution is applied; over-saving past the target is
// not rejected here (RemainingAmount simply floors at 0).
type Goal struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name,omitempty"`
	TargetAmount      *float64   `json:"target_amount,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Weight            float64    `json:"weight"`
	AmountSaved       float64    `json:"amount_saved"`
	AmountPerPaycheck *float64   `json:"amount_per_paycheck,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// WeightValue returns the priority weight, defaulting to 1.0 when unset.
func (g *Goal) WeightValue() float64 {
	if g.Weight <= 0 {
		return 1.0
	}
	return g.Weight
}

// RemainingAmount returns how much is still needed, floored at 0. A goal
// with no target needs nothing.
func (g *Goal) RemainingAmount() float64 {
	if g.TargetAmount == nil {
		return 0
	}
	if remaining := *g.TargetAmount - g.AmountSaved; remaining > 0 {
		return remaining
	}
	return 0
}

// DaysUntilDeadline counts calendar days from today to the deadline.
// Negative when the deadline has passed; 0 when there is no deadline.
func (g *Goal) DaysUntilDeadline(today time.Time) int {
	if g.Deadline == nil {
		return 0
	}
	start := startOfDayLocal(today)
	end := startOfDayLocal(*g.Deadline)
	return daysApart(start, end)
}

// Progress returns completion toward the target in [0, ...), 0 when the
// goal has no positive target.
func (g *Goal) Progress() float64 {
	if g.TargetAmount == nil || *g.TargetAmount <= 0 {
		return 0
	}
	return g.AmountSaved / *g.TargetAmount
}

// ExpectedAmount returns how much should have accumulated after the given
// number of paydays at the per-paycheck pace.
func (g *Goal) ExpectedAmount(paydays int) float64 {
	if paydays == 0 || g.AmountPerPaycheck == nil {
		return 0
	}
	return *g.AmountPerPaycheck * float64(paydays)
}
