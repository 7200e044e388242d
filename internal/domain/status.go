package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusState is the tag of the BillStatus tagged union.
type StatusState string

const (
	StatePaid     StatusState = "paid"
	StateOverdue  StatusState = "overdue"
	StateUpcoming StatusState = "upcoming"
)

// BillStatus is the derived status of a bill: Paid, Overdue, or
// Upcoming(dueDate). The Due payload is only meaningful for StateUpcoming.
type BillStatus struct {
	State StatusState `json:"state"`
	Due   time.Time   `json:"due,omitempty"`
}

// Paid returns the Paid status.
func Paid() BillStatus { return BillStatus{State: StatePaid} }

// Overdue returns the Overdue status.
func Overdue() BillStatus { return BillStatus{State: StateOverdue} }

// Upcoming returns an Upcoming status carrying the due day.
func Upcoming(due time.Time) BillStatus {
	return BillStatus{State: StateUpcoming, Due: due}
}

// IsPaid reports whether the status is Paid.
func (s BillStatus) IsPaid() bool { return s.State == StatePaid }

// Equal compares two statuses. Upcoming dates compare at day granularity.
func (s BillStatus) Equal(other BillStatus) bool {
	if s.State != other.State {
		return false
	}
	if s.State != StateUpcoming {
		return true
	}
	sy, sm, sd := s.Due.Date()
	oy, om, od := other.Due.Date()
	return sy == oy && sm == om && sd == od
}

// Label renders the status for display relative to today: "Paid",
// "Overdue", "Today", "Tomorrow", or "N Days".
func (s BillStatus) Label(today time.Time) string {
	switch s.State {
	case StatePaid:
		return "Paid"
	case StateOverdue:
		return "Overdue"
	}

	days := daysApart(today, s.Due)

	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d Days", days)
	}
}

// MarshalJSON omits the due payload for states that carry none.
func (s BillStatus) MarshalJSON() ([]byte, error) {
	type alias struct {
		State StatusState `json:"state"`
		Due   *time.Time  `json:"due,omitempty"`
	}
	a := alias{State: s.State}
	if s.State == StateUpcoming {
		due := s.Due
		a.Due = &due
	}
	return json.Marshal(a)
}

// UnmarshalJSON accepts the shape produced by MarshalJSON.
func (s *BillStatus) UnmarshalJSON(data []byte) error {
	type alias struct {
		State StatusState `json:"state"`
		Due   *time.Time  `json:"due,omitempty"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	s.State = a.State
	if a.Due != nil {
		s.Due = *a.Due
	} else {
		s.Due = time.Time{}
	}
	return nil
}
