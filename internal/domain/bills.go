package domain

import (
	"sort"
	"time"
)

// ============================================================
// Sort orders
//
// These are the less-functions used with sort.SliceStable. Their tie-break
// policy is part of the presentation contract, so they live here rather
// than in the handler layer.
// ============================================================

// distantPast / distantFuture stand in for missing due dates in sorts.
var (
	distantPast   = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	distantFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func startOfDayLocal(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ByDueDate orders by start-of-day due date ascending, breaking ties by
// amount descending. Bills without a due date sort first.
func ByDueDate(lhs, rhs *Bill) bool {
	lhsDate, rhsDate := distantPast, distantPast
	if lhs.DueDate != nil {
		lhsDate = startOfDayLocal(*lhs.DueDate)
	}
	if rhs.DueDate != nil {
		rhsDate = startOfDayLocal(*rhs.DueDate)
	}
	if lhsDate.Equal(rhsDate) {
		return lhs.AmountValue() > rhs.AmountValue()
	}
	return lhsDate.Before(rhsDate)
}

// ByName orders by name ascending (missing name sorts as empty string),
// breaking ties by amount descending.
func ByName(lhs, rhs *Bill) bool {
	if lhs.Name == rhs.Name {
		return lhs.AmountValue() > rhs.AmountValue()
	}
	return lhs.Name < rhs.Name
}

// ByBalance orders by card balance ascending, ties by amount descending.
func ByBalance(lhs, rhs *Bill) bool {
	var lhsBal, rhsBal float64
	if lhs.CreditCard != nil {
		lhsBal = lhs.CreditCard.CardBalance
	}
	if rhs.CreditCard != nil {
		rhsBal = rhs.CreditCard.CardBalance
	}
	if lhsBal == rhsBal {
		return lhs.AmountValue() > rhs.AmountValue()
	}
	return lhsBal < rhsBal
}

// ByLimit orders by credit limit ascending, ties by amount descending.
func ByLimit(lhs, rhs *Bill) bool {
	var lhsLimit, rhsLimit float64
	if lhs.CreditCard != nil {
		lhsLimit = lhs.CreditCard.CreditLimit
	}
	if rhs.CreditCard != nil {
		rhsLimit = rhs.CreditCard.CreditLimit
	}
	if lhsLimit == rhsLimit {
		return lhs.AmountValue() > rhs.AmountValue()
	}
	return lhsLimit < rhsLimit
}

// ByStatusUtilizationDate is the credit card ordering: unpaid cards first.
// Among paid cards: utilization descending, then due date ascending. Among
// unpaid cards: due date ascending, then utilization ascending. Final
// tie-break in either partition is name ascending.
func ByStatusUtilizationDate(lhs, rhs *Bill) bool {
	lhsPaid := lhs.Status != nil && lhs.Status.IsPaid()
	rhsPaid := rhs.Status != nil && rhs.Status.IsPaid()
	if lhsPaid != rhsPaid {
		return !lhsPaid
	}

	lhsDate, rhsDate := distantFuture, distantFuture
	if lhs.DueDate != nil {
		lhsDate = *lhs.DueDate
	}
	if rhs.DueDate != nil {
		rhsDate = *rhs.DueDate
	}
	lhsUtil := lhs.UtilizationValue()
	rhsUtil := rhs.UtilizationValue()

	if lhsPaid {
		if lhsUtil != rhsUtil {
			return lhsUtil > rhsUtil
		}
		if !lhsDate.Equal(rhsDate) {
			return lhsDate.Before(rhsDate)
		}
	} else {
		if !lhsDate.Equal(rhsDate) {
			return lhsDate.Before(rhsDate)
		}
		if lhsUtil != rhsUtil {
			return lhsUtil < rhsUtil
		}
	}
	return lhs.Name < rhs.Name
}

// SortBills sorts bills in place with the given less-function.
func SortBills(bills []*Bill, less func(lhs, rhs *Bill) bool) {
	sort.SliceStable(bills, func(i, j int) bool { return less(bills[i], bills[j]) })
}

// ============================================================
// Timeframes
// ============================================================

// Timeframe buckets non-credit-card bills by how soon they are due.
type Timeframe string

const (
	TimeframeOverdue   Timeframe = "overdue"
	TimeframeToday     Timeframe = "today"
	TimeframeTomorrow  Timeframe = "tomorrow"
	TimeframeThisWeek  Timeframe = "this_week"
	TimeframeThisMonth Timeframe = "this_month"
	TimeframeLater     Timeframe = "later"
)

// Valid reports whether t is a known timeframe.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeOverdue, TimeframeToday, TimeframeTomorrow,
		TimeframeThisWeek, TimeframeThisMonth, TimeframeLater:
		return true
	}
	return false
}

// Name returns the display name of the timeframe.
func (t Timeframe) Name() string {
	switch t {
	case TimeframeOverdue:
		return "Overdue"
	case TimeframeToday:
		return "Today"
	case TimeframeTomorrow:
		return "Tomorrow"
	case TimeframeThisWeek:
		return "This week"
	case TimeframeThisMonth:
		return "This month"
	default:
		return "Later"
	}
}

// Due filters bills (credit cards excluded) to those falling in the given
// timeframe relative to today, sorted by due date. Buckets: overdue (<0d),
// today (0d), tomorrow (1d), this week (2-7d), this month (>=8d but before
// the start of next month), later (next month onward). Bills without a due
// date never match.
func Due(bills []*Bill, timeframe Timeframe, today time.Time) []*Bill {
	todayStart := startOfDayLocal(today)
	nextMonth := time.Date(todayStart.Year(), todayStart.Month(), 1, 0, 0, 0, 0, todayStart.Location()).AddDate(0, 1, 0)

	var out []*Bill
	for _, b := range bills {
		if b.IsCreditCard() || b.DueDate == nil {
			continue
		}
		dueDay := startOfDayLocal(*b.DueDate)
		diff := daysApart(todayStart, dueDay)

		var match bool
		switch timeframe {
		case TimeframeOverdue:
			match = diff < 0
		case TimeframeToday:
			match = diff == 0
		case TimeframeTomorrow:
			match = diff == 1
		case TimeframeThisWeek:
			match = diff >= 2 && diff <= 7
		case TimeframeThisMonth:
			match = diff >= 8 && dueDay.Before(nextMonth)
		case TimeframeLater:
			match = !dueDay.Before(nextMonth)
		}
		if match {
			out = append(out, b)
		}
	}

	SortBills(out, ByDueDate)
	return out
}

// daysApart counts calendar days from a to b. Both dates are re-anchored
// in UTC before subtracting so a DST transition inside the range cannot
// skew the count.
func daysApart(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// ============================================================
// Portfolio aggregates
// ============================================================

// TotalAmount sums the amounts of all bills (missing amounts count as 0).
func TotalAmount(bills []*Bill) float64 {
	var total float64
	for _, b := range bills {
		total += b.AmountValue()
	}
	return total
}

// CreditCards filters to credit card bills.
func CreditCards(bills []*Bill) []*Bill {
	var out []*Bill
	for _, b := range bills {
		if b.IsCreditCard() {
			out = append(out, b)
		}
	}
	return out
}

// WithoutCreditCards filters out credit card bills.
func WithoutCreditCards(bills []*Bill) []*Bill {
	var out []*Bill
	for _, b := range bills {
		if !b.IsCreditCard() {
			out = append(out, b)
		}
	}
	return out
}

// PortfolioCredit summarizes the revolving state across all credit cards.
type PortfolioCredit struct {
	TotalBalance       float64  `json:"total_balance"`
	TotalCreditLimit   float64  `json:"total_credit_limit"`
	Utilization        float64  `json:"utilization"`
	RecommendedPayment *float64 `json:"recommended_payment,omitempty"`
}

// CreditSummary aggregates balances and limits across credit card bills.
// The portfolio recommended payment is the amount that would bring blended
// utilization down to 10%, or nil if already under.
func CreditSummary(bills []*Bill) PortfolioCredit {
	var summary PortfolioCredit
	for _, b := range CreditCards(bills) {
		if b.CreditCard == nil {
			continue
		}
		summary.TotalBalance += b.CreditCard.CardBalance
		summary.TotalCreditLimit += b.CreditCard.CreditLimit
	}
	if summary.TotalCreditLimit > 0 {
		summary.Utilization = summary.TotalBalance / summary.TotalCreditLimit
	}
	if v := summary.TotalBalance - summary.TotalCreditLimit*0.1; v > 0 {
		summary.RecommendedPayment = &v
	}
	return summary
}
