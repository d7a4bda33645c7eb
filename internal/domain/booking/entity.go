package booking

import (
	"errors"
	"time"

	"chartrettes-rooms/internal/domain/room"
	"chartrettes-rooms/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrBookingCanceled    = errors.New("booking is already canceled")
	ErrBookingInPast      = errors.New("booking date is in the past")
	ErrSlotOutsideOpening = errors.New("time slot outside room opening hours")
	ErrInvalidStatus      = errors.New("invalid booking status")
)

type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	date      time.Time
	slots     []TimeSlot
	status    Status
	quote     PriceQuote
	note      string
	createdAt time.Time
	updatedAt time.Time
}

// Factory assembles bookings: it prices the requested slots against the
// room's tariff and picks the initial approval status from the requester.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

func (f *Factory) CreateBooking(
	rm *room.Room,
	requester Requester,
	userID uuid.UUID,
	date time.Time,
	slots []TimeSlot,
	note string,
) (*Booking, error) {
	if len(slots) == 0 {
		return nil, ErrNoTimeSlots
	}

	today := truncateToDay(f.Clock.Now())
	if truncateToDay(date).Before(today) {
		return nil, ErrBookingInPast
	}

	for _, s := range slots {
		if s.StartHour() < rm.OpeningHour() || s.EndHour() > rm.ClosingHour() {
			return nil, ErrSlotOutsideOpening
		}
	}

	quote, err := ComputePrice(rm.Tariff(), requester, slots)
	if err != nil {
		return nil, err
	}

	status := StatusPending
	if requester.Category() == CategoryAdmin {
		status = StatusApproved
	}

	return &Booking{
		id:     uuid.New(),
		roomID: rm.ID(),
		userID: userID,
		date:   truncateToDay(date),
		slots:  slots,
		status: status,
		quote:  quote,
		note:   note,
	}, nil
}

func ReconstructBooking(
	id, roomID, userID uuid.UUID,
	date time.Time,
	slots []TimeSlot,
	status Status,
	quote PriceQuote,
	note string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		userID:    userID,
		date:      date,
		slots:     slots,
		status:    status,
		quote:     quote,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Approve() error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	b.status = StatusApproved
	return nil
}

func (b *Booking) Reject() error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	b.status = StatusRejected
	return nil
}

func (b *Booking) Cancel() error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	b.status = StatusCanceled
	return nil
}

func (b *Booking) IsPending() bool  { return b.status == StatusPending }
func (b *Booking) IsApproved() bool { return b.status == StatusApproved }

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) Slots() []TimeSlot    { return b.slots }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Quote() PriceQuote    { return b.quote }
func (b *Booking) Note() string         { return b.note }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
