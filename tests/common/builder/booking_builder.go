//go:build unit

package builder

import (
	"time"

	"chartrettes-rooms/internal/domain/booking"
	"chartrettes-rooms/internal/domain/room"
	"chartrettes-rooms/internal/pkg/clock"

	"github.com/google/uuid"
)

// BookingBuilder assembles a bookable room, a requester and a slot request
// with sensible defaults: a paid salle polyvalente with the tariff from the
// town's fee schedule, booked by a non-resident particulier.
type BookingBuilder struct {
	RoomName    string
	Capacity    int
	OpeningHour int
	ClosingHour int
	Tariff      room.Tariff
	Category    booking.Category
	Resident    bool
	UserID      uuid.UUID
	Date        time.Time
	SlotHours   [][2]int
	Note        string
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	hourly := int64(2000)
	halfDay := int64(7000)
	fullDay := int64(12000)
	deposit := int64(5000)

	return &BookingBuilder{
		RoomName:    "Salle polyvalente",
		Capacity:    80,
		OpeningHour: 8,
		ClosingHour: 22,
		Tariff: room.Tariff{
			Paid:         true,
			HourlyCents:  &hourly,
			HalfDayCents: &halfDay,
			FullDayCents: &fullDay,
			DepositCents: &deposit,
			HalfDayHours: 4,
			FullDayHours: 8,
		},
		Category:  booking.CategoryParticulier,
		Resident:  false,
		UserID:    uuid.New(),
		Date:      time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		SlotHours: [][2]int{{9, 13}},
		Note:      "",
		Now:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRoom() (*room.Room, error) {
	return room.NewRoom(uuid.New(), b.RoomName, b.Capacity, b.OpeningHour, b.ClosingHour, b.Tariff)
}

func (b *BookingBuilder) BuildRequester() (booking.Requester, error) {
	return booking.NewRequester(b.Category, b.Resident)
}

func (b *BookingBuilder) BuildSlots() ([]booking.TimeSlot, error) {
	slots := make([]booking.TimeSlot, 0, len(b.SlotHours))
	for _, h := range b.SlotHours {
		slot, err := booking.NewTimeSlot(h[0], h[1])
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	rm, err := b.BuildRoom()
	if err != nil {
		return nil, err
	}
	requester, err := b.BuildRequester()
	if err != nil {
		return nil, err
	}
	slots, err := b.BuildSlots()
	if err != nil {
		return nil, err
	}

	factory := booking.NewFactory(clock.NewMockClock(b.Now))
	return factory.CreateBooking(rm, requester, b.UserID, b.Date, slots, b.Note)
}
