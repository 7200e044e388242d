package domain

import "time"

// ============================================================
// API request/response types (v1 surface)
// ============================================================

// BillRequest is the body for POST /v1/bills and PUT /v1/bills/{billId}.
type BillRequest struct {
	Name               string             `json:"name,omitempty"`
	Amount             *float64           `json:"amount,omitempty"`
	DueDate            *time.Time         `json:"due_date,omitempty"`
	Category           BillCategory       `json:"category,omitempty"`
	RecurrenceInterval int                `json:"recurrence_interval,omitempty"`
	RecurrenceUnit     RecurrenceUnit     `json:"recurrence_unit,omitempty"`
	CreditCard         *CreditCardDetails `json:"credit_card,omitempty"`
}

// BillPaymentRequest is the body for POST /v1/bills/{billId}/pay.
type BillPaymentRequest struct {
	Amount float64 `json:"amount"`
}

// BillAPIResponse wraps a bill with display-ready derived values.
type BillAPIResponse struct {
	Bill               *Bill    `json:"bill"`
	StatusLabel        string   `json:"status_label"`
	Utilization        *float64 `json:"utilization,omitempty"`
	RecommendedPayment *float64 `json:"recommended_payment,omitempty"`
}

// BillsSummary is returned by GET /v1/bills/summary.
type BillsSummary struct {
	TotalAmount     float64                  `json:"total_amount"`
	TotalByCategory map[BillCategory]float64 `json:"total_by_category"`
	CountByState    map[StatusState]int      `json:"count_by_state"`
	Credit          PortfolioCredit          `json:"credit"`
}

// GoalRequest is the body for POST /v1/goals and PUT /v1/goals/{goalId}.
type GoalRequest struct {
	Name         string     `json:"name,omitempty"`
	TargetAmount *float64   `json:"target_amount,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Weight       float64    `json:"weight,omitempty"`
	AmountSaved  *float64   `json:"amount_saved,omitempty"`
}

// GoalAPIResponse wraps a goal with derived progress values.
type GoalAPIResponse struct {
	Goal              *Goal   `json:"goal"`
	Remaining         float64 `json:"remaining"`
	Progress          float64 `json:"progress"`
	DaysUntilDeadline int     `json:"days_until_deadline"`
}

// PaydayConfigRequest is the body for PUT /v1/payday.
type PaydayConfigRequest struct {
	NextPayday         *time.Time   `json:"next_payday,omitempty"`
	AmountPerPayday    *float64     `json:"amount_per_payday,omitempty"`
	SavingsPerPaycheck *float64     `json:"savings_per_paycheck,omitempty"`
	Strategy           SaveStrategy `json:"strategy,omitempty"`
}

// PaydayScheduleResponse is returned by GET /v1/payday/schedule.
type PaydayScheduleResponse struct {
	Seed        time.Time     `json:"seed"`
	HorizonDays int           `json:"horizon_days"`
	Paydays     []PaydayEntry `json:"paydays"`
}

// NextPaydayResponse is returned by GET /v1/payday/next.
type NextPaydayResponse struct {
	NextPayday time.Time `json:"next_payday"`
	DaysUntil  int       `json:"days_until"`
}

// DistributeRequest is the body for POST /v1/savings/distribute. When
// Apply is true the allocations are added to each goal's amountSaved.
type DistributeRequest struct {
	Total float64 `json:"total"`
	Apply bool    `json:"apply,omitempty"`
}

// DistributeResponse maps goal IDs to allocated amounts.
type DistributeResponse struct {
	Allocations map[string]float64 `json:"allocations"`
	Total       float64            `json:"total"`
	Applied     bool               `json:"applied"`
}

// TrackerMetrics is a JSON snapshot of the service counters, returned by
// GET /v1/metrics/tracker.
type TrackerMetrics struct {
	BillEvaluations int64   `json:"bill_evaluations"`
	Rollovers       int64   `json:"rollovers"`
	Payments        int64   `json:"payments"`
	Distributions   int64   `json:"distributions"`
	CacheHitRate    float64 `json:"cache_hit_rate"`
	Period          string  `json:"period"`
}
