//go:build unit

package booking_test

import (
	"testing"

	"chartrettes-rooms/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	cases := []struct {
		name      string
		start     int
		end       int
		wantHours int
		wantErr   bool
	}{
		{name: "single hour", start: 14, end: 15, wantHours: 1},
		{name: "morning block", start: 9, end: 13, wantHours: 4},
		{name: "full opening span", start: 0, end: 24, wantHours: 24},
		{name: "start equals end", start: 10, end: 10, wantErr: true},
		{name: "start after end", start: 15, end: 14, wantErr: true},
		{name: "negative start", start: -1, end: 5, wantErr: true},
		{name: "end past midnight", start: 20, end: 25, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot, err := booking.NewTimeSlot(c.start, c.end)

			if c.wantErr {
				require.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.start, slot.StartHour())
			assert.Equal(t, c.end, slot.EndHour())
			assert.Equal(t, c.wantHours, slot.Hours())
		})
	}

	t.Run("string formatting", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(9, 13)
		require.NoError(t, err)
		assert.Equal(t, "09:00-13:00", slot.String())
	})
}

func TestTotalHours(t *testing.T) {
	mk := func(start, end int) booking.TimeSlot {
		slot, err := booking.NewTimeSlot(start, end)
		require.NoError(t, err)
		return slot
	}

	assert.Equal(t, 0, booking.TotalHours(nil))
	assert.Equal(t, 4, booking.TotalHours([]booking.TimeSlot{mk(9, 13)}))
	assert.Equal(t, 5, booking.TotalHours([]booking.TimeSlot{mk(9, 12), mk(14, 16)}))
	// Overlap is not merged, by billing-by-hour semantics.
	assert.Equal(t, 4, booking.TotalHours([]booking.TimeSlot{mk(9, 11), mk(10, 12)}))
}

func TestRequester(t *testing.T) {
	t.Run("valid categories", func(t *testing.T) {
		for _, cat := range []booking.Category{
			booking.CategoryAssociation,
			booking.CategoryParticulier,
			booking.CategoryAdmin,
		} {
			r, err := booking.NewRequester(cat, false)
			require.NoError(t, err)
			assert.Equal(t, cat, r.Category())
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := booking.NewRequester(booking.Category("visitor"), false)
		require.ErrorIs(t, err, booking.ErrInvalidCategory)
	})
}
