package engine

import (
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
)

// Evaluate derives a bill's status from its due date, payment date and
// today, and advances the billing period when the current one has elapsed.
// The bill is mutated in place (DueDate, DatePaid, cached Status) and the
// returned status is always consistent with the bill's state after the
// call.
//
// Rules, in order:
//
//  1. No due date: Overdue. A bill needs a due date to be scheduled;
//     absence is a data-integrity gap, not a "far future" state.
//  2. Non-credit-card bills whose due day has arrived are treated as
//     settled (DatePaid = due date). This models utilities/rent autopay.
//     Credit cards are exempt: a revolving balance needs an explicit
//     MakePayment.
//  3. Paid and the period has fully elapsed (today > due day): roll the
//     due date forward one recurrence period, clear DatePaid, and
//     re-derive against the new due day. This is a single-period advance,
//     never a catch-up loop: a bill neglected across several periods
//     under-advances and stabilizes over repeated calls.
//  4. Paid and the period is still current: Paid.
//  5. Unpaid: Upcoming(dueDay) when the due day is today or later,
//     Overdue otherwise.
func Evaluate(bill *domain.Bill, today time.Time) domain.BillStatus {
	status := evaluate(bill, StartOfDay(today))
	bill.Status = &status
	return status
}

func evaluate(bill *domain.Bill, today time.Time) domain.BillStatus {
	if bill.DueDate == nil {
		return domain.Overdue()
	}
	dueDay := StartOfDay(*bill.DueDate)

	if !bill.IsCreditCard() && !dueDay.After(today) {
		paid := *bill.DueDate
		bill.DatePaid = &paid
	}

	if bill.DatePaid != nil {
		if today.After(dueDay) {
			return rollover(bill, today)
		}
		return domain.Paid()
	}

	if diff := DaysBetween(today, dueDay); diff >= 0 {
		return domain.Upcoming(dueDay)
	}
	return domain.Overdue()
}

// rollover starts the next billing cycle: one recurrence step forward,
// payment cleared. A bill with a broken recurrence (missing unit, interval
// below 1) cannot be rescheduled and degrades to Overdue rather than
// failing.
func rollover(bill *domain.Bill, today time.Time) domain.BillStatus {
	next, err := Advance(*bill.DueDate, bill.RecurrenceInterval, bill.RecurrenceUnit)
	if err != nil {
		return domain.Overdue()
	}

	bill.DueDate = &next
	bill.DatePaid = nil

	newDueDay := StartOfDay(next)
	if DaysBetween(today, newDueDay) >= 0 {
		return domain.Upcoming(newDueDay)
	}
	// The advanced date still lies in the past (short interval relative
	// to elapsed time). Callers wanting to catch up to the present must
	// call Evaluate repeatedly.
	return domain.Overdue()
}

// MakePayment records a payment against the bill at time now. For a credit
// card the balance is reduced by amount with no floor at zero; an
// overpayment leaves a negative balance, which is a credit. The status is
// forced to Paid and then immediately re-derived so any rollover implied
// by now is applied in the same call. Non-credit-card bills accept
// payments too; they simply have no balance to adjust.
func MakePayment(bill *domain.Bill, amount float64, now time.Time) domain.BillStatus {
	if bill.CreditCard != nil {
		bill.CreditCard.CardBalance -= amount
	}
	paidAt := now
	bill.DatePaid = &paidAt
	forced := domain.Paid()
	bill.Status = &forced
	return Evaluate(bill, now)
}
