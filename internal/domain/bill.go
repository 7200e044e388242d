package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ============================================================
// Bill Category
// ============================================================

// BillCategory tags a bill with its spending category. CategoryCreditCard
// carries different rollover semantics than every other category: credit
// cards are never auto-settled and track a revolving balance.
type BillCategory string

const (
	CategoryUtilities      BillCategory = "utilities"
	CategoryCreditCard     BillCategory = "credit_card"
	CategoryRent           BillCategory = "rent"
	CategoryInsurance      BillCategory = "insurance"
	CategorySubscription   BillCategory = "subscription"
	CategoryGroceries      BillCategory = "groceries"
	CategoryTransportation BillCategory = "transportation"
	CategoryPhone          BillCategory = "phone"
	CategoryInternet       BillCategory = "internet"
	CategoryEntertainment  BillCategory = "entertainment"
	CategoryOther          BillCategory = "other"
)

// AllCategories lists every valid bill category.
var AllCategories = []BillCategory{
	CategoryUtilities,
	CategoryCreditCard,
	CategoryRent,
	CategoryInsurance,
	CategorySubscription,
	CategoryGroceries,
	CategoryTransportation,
	CategoryPhone,
	CategoryInternet,
	CategoryEntertainment,
	CategoryOther,
}

// Valid reports whether c is a known category.
func (c BillCategory) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Name returns the display name for the category.
func (c BillCategory) Name() string {
	switch c {
	case CategoryUtilities:
		return "Utilities"
	case CategoryCreditCard:
		return "Credit Card"
	case CategoryRent:
		return "Rent"
	case CategoryInsurance:
		return "Insurance"
	case CategorySubscription:
		return "Subscription"
	case CategoryGroceries:
		return "Groceries"
	case CategoryTransportation:
		return "Transportation"
	case CategoryPhone:
		return "Phone"
	case CategoryInternet:
		return "Internet"
	case CategoryEntertainment:
		return "Entertainment"
	default:
		return "Other"
	}
}

// ============================================================
// Recurrence Unit
// ============================================================

// RecurrenceUnit is the time granularity by which a due date advances.
type RecurrenceUnit string

const (
	UnitDay   RecurrenceUnit = "day"
	UnitWeek  RecurrenceUnit = "week"
	UnitMonth RecurrenceUnit = "month"
	UnitYear  RecurrenceUnit = "year"
)

// Valid reports whether u is a known recurrence unit.
func (u RecurrenceUnit) Valid() bool {
	switch u {
	case UnitDay, UnitWeek, UnitMonth, UnitYear:
		return true
	}
	return false
}

// ============================================================
// Credit Card Details
// ============================================================

// CreditCardDetails holds the revolving state of a credit card bill.
type CreditCardDetails struct {
	CreditLimit float64 `json:"credit_limit"`
	CardBalance float64 `json:"card_balance"`
}

// Utilization returns balance divided by limit. A zero (or negative) limit
// is an expected steady-state for a brand-new card, not an error, and
// yields 0.
func (d CreditCardDetails) Utilization() float64 {
	if d.CreditLimit <= 0 {
		return 0
	}
	return d.CardBalance / d.CreditLimit
}

// OverExcellentThreshold reports utilization above 10%.
func (d CreditCardDetails) OverExcellentThreshold() bool {
	return d.Utilization() > 0.1
}

// OverUtilized reports utilization above 30%.
func (d CreditCardDetails) OverUtilized() bool {
	return d.Utilization() > 0.3
}

// RecommendedPayment returns the payment that brings utilization back under
// the nearest threshold: down to 30% when over-utilized, down to 10% when
// over the excellent threshold, otherwise 0. Rounded half-up to the cent.
func (d CreditCardDetails) RecommendedPayment() float64 {
	if d.OverUtilized() {
		return roundToCents(d.CardBalance - d.CreditLimit*0.3)
	}
	if d.OverExcellentThreshold() {
		return roundToCents(d.CardBalance - d.CreditLimit*0.1)
	}
	return 0
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ============================================================
// Bill
// ============================================================

// Bill is a recurring obligation. Optional fields are pointers; every
// consumer states its own default rather than relying on implicit
// unwrapping. Status is a cached, derived value: it must always be
// recomputable from DueDate, DatePaid and "today", and is refreshed by the
// status engine after any mutation.
type Bill struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name,omitempty"`
	Amount             *float64           `json:"amount,omitempty"`
	DueDate            *time.Time         `json:"due_date,omitempty"`
	DatePaid           *time.Time         `json:"date_paid,omitempty"`
	Category           BillCategory       `json:"category,omitempty"`
	RecurrenceInterval int                `json:"recurrence_interval,omitempty"`
	RecurrenceUnit     RecurrenceUnit     `json:"recurrence_unit,omitempty"`
	CreditCard         *CreditCardDetails `json:"credit_card,omitempty"`
	Status             *BillStatus        `json:"status,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// IsCreditCard reports whether the bill is a revolving credit card.
func (b *Bill) IsCreditCard() bool {
	return b.Category == CategoryCreditCard
}

// AmountValue returns the bill amount, defaulting to 0 when unset.
func (b *Bill) AmountValue() float64 {
	if b.Amount == nil {
		return 0
	}
	return *b.Amount
}

// UtilizationValue returns the credit card utilization, 0 for non-cards.
func (b *Bill) UtilizationValue() float64 {
	if b.CreditCard == nil {
		return 0
	}
	return b.CreditCard.Utilization()
}
