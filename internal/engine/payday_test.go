package engine_test

import (
	"testing"
	"time"

	"github.com/moneymap/moneymap-go/internal/engine"
)

func TestUpcomingPaydays_Spacing(t *testing.T) {
	seed := date(2026, 1, 2)
	paydays := engine.UpcomingPaydays(seed, engine.DefaultHorizonDays)

	if len(paydays) == 0 {
		t.Fatal("expected at least one payday")
	}
	if !paydays[0].Equal(seed) {
		t.Errorf("first payday = %v, want the seed %v", paydays[0], seed)
	}
	for i := 1; i < len(paydays); i++ {
		if got := engine.DaysBetween(paydays[i-1], paydays[i]); got != engine.PayCycleDays {
			t.Fatalf("gap between payday %d and %d is %d days, want %d", i-1, i, got, engine.PayCycleDays)
		}
	}

	end := seed.AddDate(0, 0, engine.DefaultHorizonDays)
	last := paydays[len(paydays)-1]
	if last.After(end) {
		t.Errorf("last payday %v exceeds horizon %v", last, end)
	}
	if last.AddDate(0, 0, engine.PayCycleDays).Before(end) {
		t.Errorf("sequence stops early: %v plus one cycle is still within horizon", last)
	}
}

func TestUpcomingPaydays_TruncatesSeedToDay(t *testing.T) {
	seed := time.Date(2026, 1, 2, 15, 30, 0, 0, time.UTC)
	paydays := engine.UpcomingPaydays(seed, 30)
	if !paydays[0].Equal(date(2026, 1, 2)) {
		t.Errorf("first payday = %v, want start of day", paydays[0])
	}
}

func TestIsBonusPayday_ThirdInMonth(t *testing.T) {
	// Seeded 2026-01-02, biweekly: Jan 2, Jan 16, Jan 30 land in January.
	paydays := engine.UpcomingPaydays(date(2026, 1, 2), 365)

	if engine.IsBonusPayday(date(2026, 1, 2), paydays) {
		t.Error("first payday of the month must not be a bonus")
	}
	if engine.IsBonusPayday(date(2026, 1, 16), paydays) {
		t.Error("second payday of the month must not be a bonus")
	}
	if !engine.IsBonusPayday(date(2026, 1, 30), paydays) {
		t.Error("third payday of the month must be a bonus")
	}
	if engine.IsBonusPayday(date(2026, 2, 13), paydays) {
		t.Error("February has only two paydays, none bonus")
	}
}

func TestIsBonusPayday_UnknownDate(t *testing.T) {
	paydays := engine.UpcomingPaydays(date(2026, 1, 2), 365)
	if engine.IsBonusPayday(date(2026, 1, 3), paydays) {
		t.Error("a date absent from the sequence is never a bonus payday")
	}
}

func TestNumberOfPaydaysUntil(t *testing.T) {
	seed := date(2026, 1, 2)
	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"end before seed", date(2025, 12, 30), 0},
		{"end on seed", seed, 1},
		{"one day short of second", date(2026, 1, 15), 1},
		{"exactly second", date(2026, 1, 16), 2},
		{"ten weeks out", date(2026, 3, 13), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := engine.NumberOfPaydaysUntil(seed, tc.end); got != tc.want {
				t.Errorf("NumberOfPaydaysUntil(%v) = %d, want %d", tc.end, got, tc.want)
			}
		})
	}
}

func TestAdvancePastToday(t *testing.T) {
	seed := date(2026, 1, 2)

	got := engine.AdvancePastToday(seed, date(2026, 2, 1))
	if !got.Equal(date(2026, 2, 13)) {
		t.Errorf("AdvancePastToday = %v, want 2026-02-13", got)
	}

	// Seed already on today stays put.
	got = engine.AdvancePastToday(seed, seed)
	if !got.Equal(seed) {
		t.Errorf("seed on today must be unchanged, got %v", got)
	}

	// Future seed stays put.
	future := date(2026, 6, 1)
	got = engine.AdvancePastToday(future, date(2026, 1, 1))
	if !got.Equal(future) {
		t.Errorf("future seed must be unchanged, got %v", got)
	}

	// Healed seed preserves the 14-day phase.
	healed := engine.AdvancePastToday(seed, date(2026, 3, 1))
	if diff := engine.DaysBetween(seed, healed); diff%engine.PayCycleDays != 0 {
		t.Errorf("healed seed off-phase: %d days from original", diff)
	}
}

func TestPaydaysSince(t *testing.T) {
	start := date(2026, 1, 2)
	if got := engine.PaydaysSince(start, date(2025, 12, 1)); got != 0 {
		t.Errorf("future start should yield 0, got %d", got)
	}
	if got := engine.PaydaysSince(start, date(2026, 1, 30)); got != 3 {
		t.Errorf("PaydaysSince = %d, want 3", got)
	}
}

func TestDaysUntilNextPayday(t *testing.T) {
	if got := engine.DaysUntilNextPayday(date(2026, 1, 16), date(2026, 1, 10)); got != 6 {
		t.Errorf("DaysUntilNextPayday = %d, want 6", got)
	}
}
