package request

import (
	"time"

	"chartrettes-rooms/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SlotRangeRequest struct {
	StartHour int `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int `json:"end_hour" binding:"required,min=1,max=24"`
}

type QuoteBookingRequest struct {
	RoomID uuid.UUID          `json:"room_id" binding:"required"`
	Slots  []SlotRangeRequest `json:"slots" binding:"required,min=1,dive"`
}

type CreateBookingRequest struct {
	RoomID uuid.UUID          `json:"room_id" binding:"required"`
	Date   string             `json:"date" binding:"required"`
	Slots  []SlotRangeRequest `json:"slots" binding:"required,min=1,dive"`
	Note   string             `json:"note"`
}

type PatternEntryRequest struct {
	Weekday   int `json:"weekday" binding:"min=0,max=6"`
	StartHour int `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int `json:"end_hour" binding:"min=0,max=24"`
}

type CreateRecurringRequest struct {
	RoomID          uuid.UUID             `json:"room_id" binding:"required"`
	StartDate       string                `json:"start_date" binding:"required"`
	EndDate         string                `json:"end_date" binding:"required"`
	Pattern         []PatternEntryRequest `json:"pattern" binding:"required,min=1,dive"`
	ExcludeHolidays bool                  `json:"exclude_school_holidays"`
	ExcludedDates   []string              `json:"excluded_dates"`
	Note            string                `json:"note"`
}

func (r QuoteBookingRequest) ToInput() commands.QuoteBookingInput {
	return commands.QuoteBookingInput{
		RoomID: r.RoomID,
		Slots:  toSlotRanges(r.Slots),
	}
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	return commands.CreateBookingInput{
		RoomID: r.RoomID,
		Date:   date,
		Slots:  toSlotRanges(r.Slots),
		Note:   r.Note,
	}, nil
}

func (r CreateRecurringRequest) ToInput() (commands.CreateRecurringInput, error) {
	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return commands.CreateRecurringInput{}, err
	}
	endDate, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return commands.CreateRecurringInput{}, err
	}

	excluded := make([]time.Time, 0, len(r.ExcludedDates))
	for _, d := range r.ExcludedDates {
		parsed, err := time.Parse(dateLayout, d)
		if err != nil {
			return commands.CreateRecurringInput{}, err
		}
		excluded = append(excluded, parsed)
	}

	pattern := make([]commands.PatternInput, 0, len(r.Pattern))
	for _, p := range r.Pattern {
		pattern = append(pattern, commands.PatternInput{
			Weekday:   p.Weekday,
			StartHour: p.StartHour,
			EndHour:   p.EndHour,
		})
	}

	return commands.CreateRecurringInput{
		RoomID:          r.RoomID,
		StartDate:       startDate,
		EndDate:         endDate,
		Pattern:         pattern,
		ExcludeHolidays: r.ExcludeHolidays,
		ExcludedDates:   excluded,
		Note:            r.Note,
	}, nil
}

func toSlotRanges(slots []SlotRangeRequest) []commands.SlotRange {
	ranges := make([]commands.SlotRange, 0, len(slots))
	for _, s := range slots {
		ranges = append(ranges, commands.SlotRange{
			StartHour: s.StartHour,
			EndHour:   s.EndHour,
		})
	}
	return ranges
}
