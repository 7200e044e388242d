package domain

import "time"

// ============================================================
// Paydays
// ============================================================

// PaydayEntry is a projected payday plus its derived bonus flag. Entries
// are ephemeral: recomputed on demand, never persisted.
type PaydayEntry struct {
	Date  time.Time `json:"date"`
	Bonus bool      `json:"bonus"`
}

// SaveStrategy selects how paycheck savings are directed across goals.
type SaveStrategy string

const (
	StrategyOneItem  SaveStrategy = "one_item"
	StrategyAllItems SaveStrategy = "all_items"
)

// Valid reports whether s is a known strategy.
func (s SaveStrategy) Valid() bool {
	return s == StrategyOneItem || s == StrategyAllItems
}

// PaydayConfig is the stored pay-calendar seed. NextPayday may go stale
// while the app is closed; readers self-heal it by advancing in 14-day
// steps past today before use.
type PaydayConfig struct {
	NextPayday         *time.Time   `json:"next_payday,omitempty"`
	AmountPerPayday    *float64     `json:"amount_per_payday,omitempty"`
	SavingsPerPaycheck *float64     `json:"savings_per_paycheck,omitempty"`
	Strategy           SaveStrategy `json:"strategy,omitempty"`
}

// StrategyValue returns the save strategy, defaulting to one-item.
func (c *PaydayConfig) StrategyValue() SaveStrategy {
	if !c.Strategy.Valid() {
		return StrategyOneItem
	}
	return c.Strategy
}
