package commands

import (
	"context"
	"time"

	"chartrettes-rooms/internal/domain/booking"

	"github.com/google/uuid"
)

// RoomSnapshot is the write-side projection of a room row.
type RoomSnapshot struct {
	ID               uuid.UUID
	Name             string
	Capacity         int
	OpeningHour      int
	ClosingHour      int
	Paid             bool
	HourlyCents      *int64
	HalfDayCents     *int64
	FullDayCents     *int64
	DepositCents     *int64
	FreeForResidents bool
	HalfDayHours     int
	FullDayHours     int
}

// RequesterSnapshot carries what pricing needs to know about the billed party.
type RequesterSnapshot struct {
	ID                  uuid.UUID
	Email               string
	Role                string
	ChartrettesResident bool
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type RequesterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequesterSnapshot, error)
	FindByEmail(ctx context.Context, email string) (*CredentialsSnapshot, error)
}

type CredentialsSnapshot struct {
	ID                  uuid.UUID
	Email               string
	PasswordHash        string
	Role                string
	ChartrettesResident bool
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error
}
