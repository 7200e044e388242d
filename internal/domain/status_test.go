package domain_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/moneymap/moneymap-go/internal/domain"
)

func TestStatusEqual(t *testing.T) {
	if !domain.Paid().Equal(domain.Paid()) {
		t.Error("Paid == Paid")
	}
	if domain.Paid().Equal(domain.Overdue()) {
		t.Error("Paid != Overdue")
	}

	morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	if !domain.Upcoming(morning).Equal(domain.Upcoming(evening)) {
		t.Error("upcoming statuses on the same day must be equal")
	}
	if domain.Upcoming(morning).Equal(domain.Upcoming(morning.AddDate(0, 0, 1))) {
		t.Error("upcoming statuses on different days must differ")
	}
}

func TestStatusLabel(t *testing.T) {
	today := date(2026, 3, 10)
	cases := []struct {
		name   string
		status domain.BillStatus
		want   string
	}{
		{"paid", domain.Paid(), "Paid"},
		{"overdue", domain.Overdue(), "Overdue"},
		{"due today", domain.Upcoming(date(2026, 3, 10)), "Today"},
		{"due tomorrow", domain.Upcoming(date(2026, 3, 11)), "Tomorrow"},
		{"due in five days", domain.Upcoming(date(2026, 3, 15)), "5 Days"},
		{"stale upcoming", domain.Upcoming(date(2026, 3, 5)), "Overdue"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.status.Label(today); got != tc.want {
				t.Errorf("Label = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStatusLabel_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// Due the day after spring forward: the shortened local day still
	// renders as Tomorrow, and a due day behind it as Overdue.
	today := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
	if got := domain.Upcoming(time.Date(2026, 3, 9, 0, 0, 0, 0, loc)).Label(today); got != "Tomorrow" {
		t.Errorf("label = %q, want Tomorrow", got)
	}
	dayAfter := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	if got := domain.Upcoming(today).Label(dayAfter); got != "Overdue" {
		t.Errorf("label = %q, want Overdue", got)
	}
}

func TestStatusJSONRoundTrip(t *testing.T) {
	due := date(2026, 3, 20)
	for _, status := range []domain.BillStatus{domain.Paid(), domain.Overdue(), domain.Upcoming(due)} {
		data, err := json.Marshal(status)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back domain.BillStatus
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !back.Equal(status) {
			t.Errorf("round trip changed %v into %v", status, back)
		}
	}
}

func TestStatusJSONOmitsDueUnlessUpcoming(t *testing.T) {
	data, err := json.Marshal(domain.Paid())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "due") {
		t.Errorf("paid status must not serialize a due date: %s", data)
	}

	data, err = json.Marshal(domain.Upcoming(date(2026, 3, 20)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "due") {
		t.Errorf("upcoming status must carry the due date: %s", data)
	}
}
