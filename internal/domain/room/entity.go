package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName       = errors.New("room name cannot be empty")
	ErrRoomNameTooLong     = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity     = errors.New("room capacity must be positive")
	ErrInvalidOpeningHours = errors.New("opening hour must be before closing hour")
)

const MaxRoomNameLength = 255

type Room struct {
	id          uuid.UUID
	name        string
	capacity    int
	openingHour int
	closingHour int
	tariff      Tariff
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(id uuid.UUID, name string, capacity, openingHour, closingHour int, tariff Tariff) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if openingHour < 0 || closingHour > 24 || openingHour >= closingHour {
		return nil, ErrInvalidOpeningHours
	}

	return &Room{
		id:          id,
		name:        name,
		capacity:    capacity,
		openingHour: openingHour,
		closingHour: closingHour,
		tariff:      tariff.withDefaults(openingHour, closingHour),
	}, nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) OpeningHour() int     { return r.openingHour }
func (r *Room) ClosingHour() int     { return r.closingHour }
func (r *Room) Tariff() Tariff       { return r.tariff }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
