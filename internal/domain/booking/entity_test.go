//go:build unit

package booking_test

import (
	"testing"
	"time"

	"chartrettes-rooms/internal/domain/booking"
	"chartrettes-rooms/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.MethodHalfDay, actual.Quote().Method)
		assert.Equal(t, int64(7000), actual.Quote().TotalCents)
		assert.Equal(t, int64(5000), actual.Quote().DepositCents)
	})

	t.Run("admin bookings are auto-approved", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Category = booking.CategoryAdmin }).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusApproved, actual.Status())
		assert.Equal(t, booking.MethodFree, actual.Quote().Method)
	})

	t.Run("booking date in the past", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Date = time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)
			}).
			BuildDomain()

		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrBookingInPast)
	})

	t.Run("booking today is allowed", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
			}).
			BuildDomain()

		require.NoError(t, err)
	})

	t.Run("slot outside opening hours", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.SlotHours = [][2]int{{6, 9}} }).
			BuildDomain()

		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrSlotOutsideOpening)
	})

	t.Run("no slots", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.SlotHours = nil }).
			BuildDomain()

		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrNoTimeSlots)
	})
}

func TestBookingTransitions(t *testing.T) {
	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		return b
	}

	t.Run("approve pending booking", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Approve())
		assert.True(t, b.IsApproved())
	})

	t.Run("reject pending booking", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Reject())
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Cancel())

		assert.ErrorIs(t, b.Approve(), booking.ErrBookingCanceled)
		assert.ErrorIs(t, b.Reject(), booking.ErrBookingCanceled)
		assert.ErrorIs(t, b.Cancel(), booking.ErrBookingCanceled)
	})
}
