package engine

import (
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
)

// Advance moves a due date forward by interval units. Day adds interval
// days, week adds interval*7 days, month adds interval calendar months
// with end-of-month clamping (see addMonthsClamped), year adds interval
// calendar years with the same clamp (Feb 29 + 1 year = Feb 28).
//
// An interval below 1 or an unknown unit is a caller contract violation
// and fails with ErrInvalidRecurrence / ErrValidation; no clamping is
// applied.
func Advance(date time.Time, interval int, unit domain.RecurrenceUnit) (time.Time, error) {
	if interval < 1 {
		return time.Time{}, &domain.ErrInvalidRecurrence{Interval: interval}
	}

	switch unit {
	case domain.UnitDay:
		return date.AddDate(0, 0, interval), nil
	case domain.UnitWeek:
		return date.AddDate(0, 0, 7*interval), nil
	case domain.UnitMonth:
		return addMonthsClamped(date, interval), nil
	case domain.UnitYear:
		return addMonthsClamped(date, 12*interval), nil
	default:
		return time.Time{}, &domain.ErrValidation{Field: "recurrence_unit", Message: "unknown unit '" + string(unit) + "'"}
	}
}
