package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"chartrettes-rooms/internal/domain/booking"
	"chartrettes-rooms/internal/domain/room"
	"chartrettes-rooms/internal/domain/schedule"
	"chartrettes-rooms/internal/domain/user"
	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/clock"
	"chartrettes-rooms/internal/pkg/errs"
	"chartrettes-rooms/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotRange struct {
	StartHour int
	EndHour   int
}

type QuoteBookingInput struct {
	RoomID uuid.UUID
	Slots  []SlotRange
}

type CreateBookingInput struct {
	RoomID uuid.UUID
	Date   time.Time
	Slots  []SlotRange
	Note   string
}

type PatternInput struct {
	Weekday   int
	StartHour int
	EndHour   int
}

type CreateRecurringInput struct {
	RoomID          uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Pattern         []PatternInput
	ExcludeHolidays bool
	ExcludedDates   []time.Time
	Note            string
}

// FailedOccurrence reports one date of a recurring request that could not be
// persisted, with a caller-presentable reason.
type FailedOccurrence struct {
	Date   time.Time
	Reason string
}

// BulkCreateResult accumulates the outcome of a recurring creation: every
// occurrence is attempted, successes and failures are both reported.
type BulkCreateResult struct {
	Requested int
	Created   []*queries.BookingView
	Failed    []FailedOccurrence
}

type BookingCommands interface {
	QuoteBooking(ctx context.Context, userID uuid.UUID, in QuoteBookingInput) (*booking.PriceQuote, error)
	CreateBooking(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	CreateRecurringBookings(ctx context.Context, userID uuid.UUID, in CreateRecurringInput) (*BulkCreateResult, error)
	ApproveBooking(ctx context.Context, bookingID uuid.UUID) error
	RejectBooking(ctx context.Context, bookingID uuid.UUID) error
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	requesterRepo  RequesterRepository
	bookingQueries queries.BookingQueries
	factory        *booking.Factory
	calendar       schedule.HolidayCalendar
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	requesterRepo RequesterRepository,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	calendar schedule.HolidayCalendar,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		requesterRepo:  requesterRepo,
		bookingQueries: bookingQueries,
		factory:        factory,
		calendar:       calendar,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) QuoteBooking(ctx context.Context, userID uuid.UUID, in QuoteBookingInput) (*booking.PriceQuote, error) {
	rm, err := c.loadRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	requester, err := c.loadRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	slots, err := toTimeSlots(in.Slots)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlots)
	}

	quote, err := booking.ComputePrice(rm.Tariff(), requester, slots)
	if err != nil {
		return nil, markPricingErr(err)
	}
	return &quote, nil
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	rm, err := c.loadRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	requester, err := c.loadRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	slots, err := toTimeSlots(in.Slots)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlots)
	}

	entity, err := c.factory.CreateBooking(rm, requester, userID, in.Date, slots, in.Note)
	if err != nil {
		return nil, markCreateErr(err)
	}

	id, err := c.bookingRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// CreateRecurringBookings expands the weekly pattern and persists each
// occurrence as its own booking. The loop is a result-collecting fold: one
// occurrence failing (a conflict on a single date, say) never aborts the rest
// of the season, and every failure is reported back instead of swallowed.
func (c *bookingCommandsImpl) CreateRecurringBookings(ctx context.Context, userID uuid.UUID, in CreateRecurringInput) (*BulkCreateResult, error) {
	rm, err := c.loadRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	requester, err := c.loadRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	pattern := make(schedule.WeeklyPattern, 0, len(in.Pattern))
	for _, p := range in.Pattern {
		pattern = append(pattern, schedule.PatternEntry{
			Weekday:   time.Weekday(p.Weekday),
			StartHour: p.StartHour,
			EndHour:   p.EndHour,
		})
	}

	occurrences, err := schedule.Expand(schedule.ExpansionRequest{
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Pattern:         pattern,
		ExcludeHolidays: in.ExcludeHolidays,
		ExcludedDates:   in.ExcludedDates,
	}, c.calendar)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPattern)
	}

	result := &BulkCreateResult{Requested: len(occurrences)}
	for _, occ := range occurrences {
		view, createErr := c.createOccurrence(ctx, rm, requester, userID, occ, in.Note)
		if createErr != nil {
			slog.Warn("skipping recurring occurrence",
				"room_id", rm.ID(),
				"date", occ.Date.Format("2006-01-02"),
				"error", createErr.Error(),
			)
			result.Failed = append(result.Failed, FailedOccurrence{
				Date:   occ.Date,
				Reason: failureReason(createErr),
			})
			continue
		}
		result.Created = append(result.Created, view)
	}

	return result, nil
}

func (c *bookingCommandsImpl) createOccurrence(
	ctx context.Context,
	rm *room.Room,
	requester booking.Requester,
	userID uuid.UUID,
	occ schedule.Occurrence,
	note string,
) (*queries.BookingView, error) {
	entity, err := c.factory.CreateBooking(rm, requester, userID, occ.Date, occ.Slots, note)
	if err != nil {
		return nil, markCreateErr(err)
	}

	id, err := c.bookingRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetByID(ctx, id)
}

func (c *bookingCommandsImpl) ApproveBooking(ctx context.Context, bookingID uuid.UUID) error {
	return c.transition(ctx, bookingID, (*booking.Booking).Approve)
}

func (c *bookingCommandsImpl) RejectBooking(ctx context.Context, bookingID uuid.UUID) error {
	return c.transition(ctx, bookingID, (*booking.Booking).Reject)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) error {
	entity, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if entity.UserID() != userID {
		return errs.ErrBookingNotFound
	}
	if err := entity.Cancel(); err != nil {
		return errs.Mark(err, errs.ErrBookingCanceled)
	}
	return c.persistStatus(ctx, entity)
}

func (c *bookingCommandsImpl) transition(ctx context.Context, bookingID uuid.UUID, apply func(*booking.Booking) error) error {
	entity, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := apply(entity); err != nil {
		return errs.Mark(err, errs.ErrBookingCanceled)
	}
	return c.persistStatus(ctx, entity)
}

func (c *bookingCommandsImpl) persistStatus(ctx context.Context, entity *booking.Booking) error {
	err := c.bookingRepo.UpdateStatus(ctx, entity.ID(), entity.Status(), c.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) loadRoom(ctx context.Context, roomID uuid.UUID) (*room.Room, error) {
	snap, err := c.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrRoomNotFound)
	}

	tariff := room.Tariff{
		Paid:             snap.Paid,
		HourlyCents:      snap.HourlyCents,
		HalfDayCents:     snap.HalfDayCents,
		FullDayCents:     snap.FullDayCents,
		DepositCents:     snap.DepositCents,
		FreeForResidents: snap.FreeForResidents,
		HalfDayHours:     snap.HalfDayHours,
		FullDayHours:     snap.FullDayHours,
	}
	rm, err := room.NewRoom(snap.ID, snap.Name, snap.Capacity, snap.OpeningHour, snap.ClosingHour, tariff)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return rm, nil
}

func (c *bookingCommandsImpl) loadRequester(ctx context.Context, userID uuid.UUID) (booking.Requester, error) {
	snap, err := c.requesterRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Requester{}, errs.ErrRequesterNotFound
		}
		return booking.Requester{}, errs.Mark(err, errs.ErrRequesterNotFound)
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return booking.Requester{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	requester, err := booking.NewRequester(categoryForRole(role), snap.ChartrettesResident)
	if err != nil {
		return booking.Requester{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return requester, nil
}

// categoryForRole maps account roles onto billed-party categories.
func categoryForRole(role user.Role) booking.Category {
	switch role {
	case user.RoleAssociation:
		return booking.CategoryAssociation
	case user.RoleAdmin:
		return booking.CategoryAdmin
	default:
		return booking.CategoryParticulier
	}
}

func toTimeSlots(ranges []SlotRange) ([]booking.TimeSlot, error) {
	slots := make([]booking.TimeSlot, 0, len(ranges))
	for _, r := range ranges {
		slot, err := booking.NewTimeSlot(r.StartHour, r.EndHour)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func markCreateErr(err error) error {
	switch {
	case errorIsOneOf(err, booking.ErrNoTimeSlots, booking.ErrInvalidTimeSlot):
		return errs.Mark(err, errs.ErrInvalidTimeSlots)
	case errorIsOneOf(err, booking.ErrPricingNotConfigured):
		return errs.Mark(err, errs.ErrPricingNotConfigured)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func markPricingErr(err error) error {
	if errorIsOneOf(err, booking.ErrPricingNotConfigured) {
		return errs.Mark(err, errs.ErrPricingNotConfigured)
	}
	return errs.Mark(err, errs.ErrInvalidTimeSlots)
}

func failureReason(err error) string {
	switch {
	case errorIsOneOf(err, errs.ErrBookingConflict):
		return "slot already booked"
	case errorIsOneOf(err, errs.ErrPricingNotConfigured):
		return "pricing not configured"
	case errorIsOneOf(err, errs.ErrInvalidTimeSlots):
		return "invalid time slots"
	default:
		return "could not create booking"
	}
}

func errorIsOneOf(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
