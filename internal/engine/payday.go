package engine

import "time"

// PayCycleDays is the fixed biweekly pay cadence.
const PayCycleDays = 14

// DefaultHorizonDays is the default projection window for a pay calendar.
const DefaultHorizonDays = 365

// UpcomingPaydays projects the pay calendar from seed: starting at the
// seed's start-of-day, dates step by 14 days while they remain within
// horizonDays of the seed. Pure function of its inputs; the sequence is
// finite and restartable.
func UpcomingPaydays(seed time.Time, horizonDays int) []time.Time {
	start := StartOfDay(seed)
	end := start.AddDate(0, 0, horizonDays)

	var paydays []time.Time
	for current := start; !current.After(end); current = current.AddDate(0, 0, PayCycleDays) {
		paydays = append(paydays, current)
	}
	return paydays
}

// IsBonusPayday reports whether date is the third payday falling within its
// calendar month, counting paydays in the supplied sequence up to and
// including date's position. A month with three biweekly paydays is the
// "extra" pay month under a 14-day cadence.
func IsBonusPayday(date time.Time, paydays []time.Time) bool {
	index := -1
	for i, p := range paydays {
		if p.Equal(date) {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}

	countInMonth := 0
	for _, p := range paydays[:index+1] {
		if SameMonth(p, date) {
			countInMonth++
		}
	}
	return countInMonth == 3
}

// NumberOfPaydaysUntil counts paydays from seed through endDate inclusive,
// stepping by 14 days. 0 when seed is after endDate.
func NumberOfPaydaysUntil(seed, endDate time.Time) int {
	count := 0
	for current := seed; !current.After(endDate); current = current.AddDate(0, 0, PayCycleDays) {
		count++
	}
	return count
}

// AdvancePastToday self-heals a stale stored seed: it steps forward by 14
// days while the seed remains strictly before today. A seed already on or
// after today is returned unchanged.
func AdvancePastToday(seed, today time.Time) time.Time {
	current := seed
	for current.Before(today) {
		current = current.AddDate(0, 0, PayCycleDays)
	}
	return current
}

// DaysUntilNextPayday counts calendar days from today to the payday.
func DaysUntilNextPayday(payday, today time.Time) int {
	return DaysBetween(today, payday)
}

// PaydaysSince counts paydays from start through today inclusive. 0 when
// start is in the future.
func PaydaysSince(start, today time.Time) int {
	if start.After(today) {
		return 0
	}
	return NumberOfPaydaysUntil(start, today)
}
