package schedule

import (
	"time"

	"chartrettes-rooms/internal/domain/booking"
)

// ExpansionRequest describes a recurring weekly booking over a date range.
type ExpansionRequest struct {
	StartDate       time.Time
	EndDate         time.Time
	Pattern         WeeklyPattern
	ExcludeHolidays bool
	ExcludedDates   []time.Time
}

// Occurrence is one qualifying date with its assembled slot list. Each
// occurrence is persisted by the caller as an individual booking.
type Occurrence struct {
	Date  time.Time
	Slots []booking.TimeSlot
}

// Expand enumerates every date in [StartDate, EndDate], keeps the ones whose
// weekday the pattern requests, drops school-holiday dates when asked to, and
// drops explicitly excluded dates. A start date after the end date yields an
// empty result, not an error. Pure function over its inputs and the calendar.
func Expand(req ExpansionRequest, cal HolidayCalendar) ([]Occurrence, error) {
	if err := req.Pattern.Validate(); err != nil {
		return nil, err
	}

	var occurrences []Occurrence
	start := truncateToDay(req.StartDate)
	end := truncateToDay(req.EndDate)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		entries := req.Pattern.entriesFor(date.Weekday())
		if len(entries) == 0 {
			continue
		}
		if req.ExcludeHolidays && cal.IsHoliday(date) {
			continue
		}
		if isExcluded(date, req.ExcludedDates) {
			continue
		}

		var slots []booking.TimeSlot
		for _, e := range entries {
			slots = append(slots, e.Slots()...)
		}

		occurrences = append(occurrences, Occurrence{Date: date, Slots: slots})
	}

	return occurrences, nil
}

func isExcluded(date time.Time, excluded []time.Time) bool {
	for _, ex := range excluded {
		if sameDay(date, ex) {
			return true
		}
	}
	return false
}
