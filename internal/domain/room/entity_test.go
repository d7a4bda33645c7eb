//go:build unit

package room_test

import (
	"strings"
	"testing"

	"chartrettes-rooms/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	tests := []struct {
		name        string
		roomName    string
		capacity    int
		openingHour int
		closingHour int
		wantErr     error
	}{
		{
			name:     "valid room",
			roomName: "Salle polyvalente", capacity: 80, openingHour: 8, closingHour: 22,
		},
		{
			name:     "empty name",
			roomName: "  ", capacity: 80, openingHour: 8, closingHour: 22,
			wantErr: room.ErrEmptyRoomName,
		},
		{
			name:     "name too long",
			roomName: strings.Repeat("a", 256), capacity: 80, openingHour: 8, closingHour: 22,
			wantErr: room.ErrRoomNameTooLong,
		},
		{
			name:     "zero capacity",
			roomName: "Salle polyvalente", capacity: 0, openingHour: 8, closingHour: 22,
			wantErr: room.ErrInvalidCapacity,
		},
		{
			name:     "opening after closing",
			roomName: "Salle polyvalente", capacity: 80, openingHour: 22, closingHour: 8,
			wantErr: room.ErrInvalidOpeningHours,
		},
		{
			name:     "closing past midnight",
			roomName: "Salle polyvalente", capacity: 80, openingHour: 8, closingHour: 25,
			wantErr: room.ErrInvalidOpeningHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm, err := room.NewRoom(uuid.New(), tt.roomName, tt.capacity, tt.openingHour, tt.closingHour, room.Tariff{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.roomName, rm.Name())
		})
	}

	t.Run("name is trimmed", func(t *testing.T) {
		rm, err := room.NewRoom(uuid.New(), "  Salle des fêtes  ", 120, 8, 22, room.Tariff{})
		require.NoError(t, err)
		assert.Equal(t, "Salle des fêtes", rm.Name())
	})
}

func TestTariffDefaults(t *testing.T) {
	t.Run("thresholds derived from opening span", func(t *testing.T) {
		rm, err := room.NewRoom(uuid.New(), "Salle polyvalente", 80, 8, 22, room.Tariff{})
		require.NoError(t, err)

		// 14h span: full day 14h, half day 7h
		assert.Equal(t, 14, rm.Tariff().FullDayHours)
		assert.Equal(t, 7, rm.Tariff().HalfDayHours)
	})

	t.Run("odd span rounds half day up", func(t *testing.T) {
		rm, err := room.NewRoom(uuid.New(), "Préau", 40, 9, 18, room.Tariff{})
		require.NoError(t, err)

		assert.Equal(t, 9, rm.Tariff().FullDayHours)
		assert.Equal(t, 5, rm.Tariff().HalfDayHours)
	})

	t.Run("configured thresholds are kept", func(t *testing.T) {
		tariff := room.Tariff{HalfDayHours: 4, FullDayHours: 8}
		rm, err := room.NewRoom(uuid.New(), "Salle polyvalente", 80, 8, 22, tariff)
		require.NoError(t, err)

		assert.Equal(t, 8, rm.Tariff().FullDayHours)
		assert.Equal(t, 4, rm.Tariff().HalfDayHours)
	})
}

func TestTariffDeposit(t *testing.T) {
	deposit := int64(5000)
	assert.Equal(t, int64(5000), room.Tariff{DepositCents: &deposit}.Deposit())
	assert.Zero(t, room.Tariff{}.Deposit())
}
