//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"chartrettes-rooms/internal/domain/booking"
	"chartrettes-rooms/internal/domain/schedule"
	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/clock"
	"chartrettes-rooms/internal/usecase/commands"
	"chartrettes-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoomRepo struct {
	snap *commands.RoomSnapshot
}

func (s *stubRoomRepo) FindByID(_ context.Context, _ uuid.UUID) (*commands.RoomSnapshot, error) {
	return s.snap, nil
}

type stubRequesterRepo struct {
	snap *commands.RequesterSnapshot
}

func (s *stubRequesterRepo) FindByID(_ context.Context, _ uuid.UUID) (*commands.RequesterSnapshot, error) {
	return s.snap, nil
}

func (s *stubRequesterRepo) FindByEmail(_ context.Context, _ string) (*commands.CredentialsSnapshot, error) {
	return nil, infra.NewRepoErr(infra.KindNotFound, "not found")
}

type stubBookingRepo struct {
	created      []*booking.Booking
	conflictDays map[string]bool
}

func (s *stubBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	if s.conflictDays[b.Date().Format("2006-01-02")] {
		return uuid.Nil, infra.NewRepoErr(infra.KindConflict, "overlapping booking")
	}
	s.created = append(s.created, b)
	return b.ID(), nil
}

func (s *stubBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	for _, b := range s.created {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ booking.Status, _ time.Time) error {
	return nil
}

type stubBookingQueries struct{}

func (stubBookingQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return &queries.BookingView{ID: id}, nil
}

func (stubBookingQueries) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (stubBookingQueries) ListPending(_ context.Context) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func testRoomSnapshot() *commands.RoomSnapshot {
	hourly := int64(2000)
	return &commands.RoomSnapshot{
		ID:           uuid.New(),
		Name:         "Salle des fêtes",
		Capacity:     120,
		OpeningHour:  8,
		ClosingHour:  22,
		Paid:         true,
		HourlyCents:  &hourly,
		HalfDayHours: 4,
		FullDayHours: 8,
	}
}

func newCommands(bookingRepo *stubBookingRepo, requester *commands.RequesterSnapshot, cal schedule.HolidayCalendar) commands.BookingCommands {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	return commands.NewBookingCommands(
		bookingRepo,
		&stubRoomRepo{snap: testRoomSnapshot()},
		&stubRequesterRepo{snap: requester},
		stubBookingQueries{},
		booking.NewFactory(clk),
		cal,
		clk,
	)
}

func associationRequester() *commands.RequesterSnapshot {
	return &commands.RequesterSnapshot{
		ID:    uuid.New(),
		Email: "bureau@asso-chartrettes.fr",
		Role:  "association",
	}
}

func TestCreateRecurringBookings(t *testing.T) {
	julyWednesdays := commands.CreateRecurringInput{
		StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		Pattern:   []commands.PatternInput{{Weekday: 3, StartHour: 14, EndHour: 16}},
	}

	t.Run("all occurrences created", func(t *testing.T) {
		repo := &stubBookingRepo{}
		cmds := newCommands(repo, associationRequester(), nil)

		result, err := cmds.CreateRecurringBookings(context.Background(), uuid.New(), julyWednesdays)
		require.NoError(t, err)

		assert.Equal(t, 5, result.Requested)
		assert.Len(t, result.Created, 5)
		assert.Empty(t, result.Failed)
	})

	t.Run("one conflicting date does not abort the batch", func(t *testing.T) {
		repo := &stubBookingRepo{conflictDays: map[string]bool{"2025-07-09": true}}
		cmds := newCommands(repo, associationRequester(), nil)

		result, err := cmds.CreateRecurringBookings(context.Background(), uuid.New(), julyWednesdays)
		require.NoError(t, err)

		assert.Equal(t, 5, result.Requested)
		assert.Len(t, result.Created, 4)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "2025-07-09", result.Failed[0].Date.Format("2006-01-02"))
		assert.Equal(t, "slot already booked", result.Failed[0].Reason)
	})

	t.Run("holiday calendar filters expansion", func(t *testing.T) {
		cal := schedule.HolidayCalendar{
			"2024-2025": {{
				Start: time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
			}},
		}
		repo := &stubBookingRepo{}
		cmds := newCommands(repo, associationRequester(), cal)

		in := julyWednesdays
		in.ExcludeHolidays = true

		result, err := cmds.CreateRecurringBookings(context.Background(), uuid.New(), in)
		require.NoError(t, err)
		assert.Zero(t, result.Requested)
		assert.Empty(t, result.Created)
	})

	t.Run("association bookings wait for approval", func(t *testing.T) {
		repo := &stubBookingRepo{}
		cmds := newCommands(repo, associationRequester(), nil)

		_, err := cmds.CreateRecurringBookings(context.Background(), uuid.New(), julyWednesdays)
		require.NoError(t, err)

		for _, b := range repo.created {
			assert.Equal(t, booking.StatusPending, b.Status())
		}
	})

	t.Run("admin bookings are created approved", func(t *testing.T) {
		repo := &stubBookingRepo{}
		admin := associationRequester()
		admin.Role = "admin"
		cmds := newCommands(repo, admin, nil)

		_, err := cmds.CreateRecurringBookings(context.Background(), uuid.New(), julyWednesdays)
		require.NoError(t, err)

		require.NotEmpty(t, repo.created)
		for _, b := range repo.created {
			assert.Equal(t, booking.StatusApproved, b.Status())
		}
	})

	t.Run("invalid pattern is rejected before any persistence", func(t *testing.T) {
		repo := &stubBookingRepo{}
		cmds := newCommands(repo, associationRequester(), nil)

		in := julyWednesdays
		in.Pattern = []commands.PatternInput{{Weekday: 3, StartHour: 18, EndHour: 14}}

		_, err := cmds.CreateRecurringBookings(context.Background(), uuid.New(), in)
		require.Error(t, err)
		assert.Empty(t, repo.created)
	})
}
