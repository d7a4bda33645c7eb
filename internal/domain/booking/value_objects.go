package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrInvalidCategory = errors.New("invalid requester category")
)

// TimeSlot is a half-open wall-clock interval [startHour, endHour) within a
// single day. Slots are hour-granular: billing counts whole hours, so
// fractional durations cannot be represented at all.
type TimeSlot struct {
	startHour int
	endHour   int
}

func NewTimeSlot(startHour, endHour int) (TimeSlot, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{startHour: startHour, endHour: endHour}, nil
}

func (ts TimeSlot) StartHour() int { return ts.startHour }
func (ts TimeSlot) EndHour() int   { return ts.endHour }

func (ts TimeSlot) Hours() int {
	return ts.endHour - ts.startHour
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", ts.startHour, ts.endHour)
}

// TotalHours sums per-slot durations. Overlapping slots are not merged:
// duplicated hours are double-counted, matching billing-by-hour semantics.
func TotalHours(slots []TimeSlot) int {
	total := 0
	for _, s := range slots {
		total += s.Hours()
	}
	return total
}

// Requester is the billed party as seen by the pricing engine. The resident
// flag only matters for the particulier category.
type Requester struct {
	category            Category
	chartrettesResident bool
}

func NewRequester(category Category, chartrettesResident bool) (Requester, error) {
	if !category.IsValid() {
		return Requester{}, ErrInvalidCategory
	}
	return Requester{category: category, chartrettesResident: chartrettesResident}, nil
}

func (r Requester) Category() Category { return r.category }

func (r Requester) IsChartrettesResident() bool { return r.chartrettesResident }
