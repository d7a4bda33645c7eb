package schedule

import (
	"errors"
	"time"

	"chartrettes-rooms/internal/domain/booking"
)

var ErrInvalidPatternEntry = errors.New("invalid weekly pattern entry")

// PatternEntry requests one weekday's hour range across the whole recurrence.
// EndHour is the final boundary hour: {8, 10} expands to the slots 8-9 and
// 9-10, and StartHour == EndHour yields the single slot [h, h+1).
type PatternEntry struct {
	Weekday   time.Weekday
	StartHour int
	EndHour   int
}

func (e PatternEntry) Validate() error {
	if e.Weekday < time.Sunday || e.Weekday > time.Saturday {
		return ErrInvalidPatternEntry
	}
	if e.StartHour < 0 || e.StartHour > 23 || e.EndHour > 24 {
		return ErrInvalidPatternEntry
	}
	if e.StartHour > e.EndHour {
		return ErrInvalidPatternEntry
	}
	return nil
}

// Slots expands the entry's hour range into consecutive one-hour slots.
func (e PatternEntry) Slots() []booking.TimeSlot {
	last := e.EndHour
	if e.StartHour == e.EndHour {
		last = e.StartHour + 1
	}

	slots := make([]booking.TimeSlot, 0, last-e.StartHour)
	for h := e.StartHour; h < last; h++ {
		slot, err := booking.NewTimeSlot(h, h+1)
		if err != nil {
			continue // unreachable for validated entries
		}
		slots = append(slots, slot)
	}
	return slots
}

// WeeklyPattern is the full set of requested weekday hour ranges. Multiple
// entries may target the same weekday; their slots are contributed additively
// per generated date.
type WeeklyPattern []PatternEntry

func (p WeeklyPattern) Validate() error {
	if len(p) == 0 {
		return ErrInvalidPatternEntry
	}
	for _, e := range p {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p WeeklyPattern) entriesFor(day time.Weekday) []PatternEntry {
	var matched []PatternEntry
	for _, e := range p {
		if e.Weekday == day {
			matched = append(matched, e)
		}
	}
	return matched
}
