package schedule

import "time"

// HolidayPeriod is a closed date interval [Start, End], typically one school
// holiday. Bounds are compared at day granularity.
type HolidayPeriod struct {
	Start time.Time
	End   time.Time
	Label string
}

func (p HolidayPeriod) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(p.Start)) && !d.After(truncateToDay(p.End))
}

// HolidayCalendar maps a school-year key ("2025-2026") to that year's holiday
// periods. It is static reference data: adding a new school year is a data
// change, the filtering logic never needs to know about specific years.
type HolidayCalendar map[string][]HolidayPeriod

// IsHoliday reports whether the date falls inside any configured period.
// Dates outside every known period are not holidays: a future year without a
// configured calendar fails open rather than silently blocking all bookings.
func (c HolidayCalendar) IsHoliday(date time.Time) bool {
	for _, periods := range c {
		for _, p := range periods {
			if p.Contains(date) {
				return true
			}
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
