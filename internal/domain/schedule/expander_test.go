//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"chartrettes-rooms/internal/domain/booking"
	"chartrettes-rooms/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func summerCalendar() schedule.HolidayCalendar {
	return schedule.HolidayCalendar{
		"2024-2025": {
			{Start: date(2025, 6, 28), End: date(2025, 8, 31), Label: "Vacances d'été"},
		},
	}
}

func wednesdayAfternoons() schedule.WeeklyPattern {
	return schedule.WeeklyPattern{
		{Weekday: time.Wednesday, StartHour: 14, EndHour: 16},
	}
}

func TestExpand(t *testing.T) {
	t.Run("holiday exclusion empties a fully covered range", func(t *testing.T) {
		occurrences, err := schedule.Expand(schedule.ExpansionRequest{
			StartDate:       date(2025, 7, 1),
			EndDate:         date(2025, 7, 31),
			Pattern:         wednesdayAfternoons(),
			ExcludeHolidays: true,
		}, summerCalendar())

		require.NoError(t, err)
		assert.Empty(t, occurrences)
	})

	t.Run("without holiday exclusion every Wednesday is generated", func(t *testing.T) {
		occurrences, err := schedule.Expand(schedule.ExpansionRequest{
			StartDate: date(2025, 7, 1),
			EndDate:   date(2025, 7, 31),
			Pattern:   wednesdayAfternoons(),
		}, summerCalendar())

		require.NoError(t, err)
		require.Len(t, occurrences, 5)

		wantDates := []time.Time{
			date(2025, 7, 2), date(2025, 7, 9), date(2025, 7, 16),
			date(2025, 7, 23), date(2025, 7, 30),
		}
		for i, occ := range occurrences {
			assert.True(t, occ.Date.Equal(wantDates[i]), "occurrence %d: got %v", i, occ.Date)
			require.Len(t, occ.Slots, 2)
			assert.Equal(t, "14:00-15:00", occ.Slots[0].String())
			assert.Equal(t, "15:00-16:00", occ.Slots[1].String())
		}
	})

	t.Run("explicitly excluded date is skipped", func(t *testing.T) {
		occurrences, err := schedule.Expand(schedule.ExpansionRequest{
			StartDate:     date(2025, 7, 1),
			EndDate:       date(2025, 7, 31),
			Pattern:       wednesdayAfternoons(),
			ExcludedDates: []time.Time{date(2025, 7, 9)},
		}, summerCalendar())

		require.NoError(t, err)
		require.Len(t, occurrences, 4)
		for _, occ := range occurrences {
			assert.False(t, occ.Date.Equal(date(2025, 7, 9)))
		}
	})

	t.Run("excluded date comparison ignores the time of day", func(t *testing.T) {
		occurrences, err := schedule.Expand(schedule.ExpansionRequest{
			StartDate:     date(2025, 7, 1),
			EndDate:       date(2025, 7, 31),
			Pattern:       wednesdayAfternoons(),
			ExcludedDates: []time.Time{time.Date(2025, 7, 9, 18, 30, 0, 0, time.UTC)},
		}, summerCalendar())

		require.NoError(t, err)
		assert.Len(t, occurrences, 4)
	})

	t.Run("start after end yields empty result", func(t *testing.T) {
		occurrences, err := schedule.Expand(schedule.ExpansionRequest{
			StartDate: date(2025, 7, 31),
			EndDate:   date(2025, 7, 1),
			Pattern:   wednesdayAfternoons(),
		}, nil)

		require.NoError(t, err)
		assert.Empty(t, occurrences)
	})

	t.Run("range without a matching weekday yields empty result", func(t *testing.T) {
		// Tuesday the 1st through Friday the 4th, asking for Sundays.
		occurrences, err := schedule.Expand(schedule.ExpansionRequest{
			StartDate: date(2025, 7, 1),
			EndDate:   date(2025, 7, 4),
			Pattern: schedule.WeeklyPattern{
				{Weekday: time.Sunday, StartHour: 10, EndHour: 12},
			},
		}, nil)

		require.NoError(t, err)
		assert.Empty(t, occurrences)
	})

	t.Run("all dates stay inside the requested range", func(t *testing.T) {
		req := schedule.ExpansionRequest{
			StartDate: date(2025, 9, 3),
			EndDate:   date(2026, 6, 30),
			Pattern:   wednesdayAfternoons(),
		}

		occurrences, err := schedule.Expand(req, nil)
		require.NoError(t, err)
		require.NotEmpty(t, occurrences)

		for _, occ := range occurrences {
			assert.False(t, occ.Date.Before(req.StartDate))
			assert.False(t, occ.Date.After(req.EndDate))
			assert.Equal(t, time.Wednesday, occ.Date.Weekday())
		}
	})

	t.Run("multiple entries for one weekday add their slots", func(t *testing.T) {
		occurrences, err := schedule.Expand(schedule.ExpansionRequest{
			StartDate: date(2025, 7, 2),
			EndDate:   date(2025, 7, 2),
			Pattern: schedule.WeeklyPattern{
				{Weekday: time.Wednesday, StartHour: 9, EndHour: 11},
				{Weekday: time.Wednesday, StartHour: 14, EndHour: 16},
			},
		}, nil)

		require.NoError(t, err)
		require.Len(t, occurrences, 1)

		got := make([]string, 0, len(occurrences[0].Slots))
		for _, s := range occurrences[0].Slots {
			got = append(got, s.String())
		}
		want := []string{"09:00-10:00", "10:00-11:00", "14:00-15:00", "15:00-16:00"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid pattern entries are rejected", func(t *testing.T) {
		cases := []struct {
			name  string
			entry schedule.PatternEntry
		}{
			{"start after end", schedule.PatternEntry{Weekday: time.Monday, StartHour: 16, EndHour: 14}},
			{"negative start", schedule.PatternEntry{Weekday: time.Monday, StartHour: -1, EndHour: 10}},
			{"end past midnight", schedule.PatternEntry{Weekday: time.Monday, StartHour: 10, EndHour: 25}},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := schedule.Expand(schedule.ExpansionRequest{
					StartDate: date(2025, 7, 1),
					EndDate:   date(2025, 7, 31),
					Pattern:   schedule.WeeklyPattern{c.entry},
				}, nil)
				require.ErrorIs(t, err, schedule.ErrInvalidPatternEntry)
			})
		}

		t.Run("empty pattern", func(t *testing.T) {
			_, err := schedule.Expand(schedule.ExpansionRequest{
				StartDate: date(2025, 7, 1),
				EndDate:   date(2025, 7, 31),
			}, nil)
			require.ErrorIs(t, err, schedule.ErrInvalidPatternEntry)
		})
	})
}

func TestPatternEntrySlots(t *testing.T) {
	t.Run("range expands to consecutive one-hour slots", func(t *testing.T) {
		entry := schedule.PatternEntry{Weekday: time.Monday, StartHour: 8, EndHour: 10}
		slots := entry.Slots()

		require.Len(t, slots, 2)
		assert.Equal(t, "08:00-09:00", slots[0].String())
		assert.Equal(t, "09:00-10:00", slots[1].String())
	})

	t.Run("equal start and end yield a single slot", func(t *testing.T) {
		entry := schedule.PatternEntry{Weekday: time.Monday, StartHour: 8, EndHour: 8}
		slots := entry.Slots()

		require.Len(t, slots, 1)
		assert.Equal(t, "08:00-09:00", slots[0].String())
	})

	t.Run("slot coverage reconstructs the hour range without gaps", func(t *testing.T) {
		entry := schedule.PatternEntry{Weekday: time.Monday, StartHour: 9, EndHour: 17}
		slots := entry.Slots()

		assert.Equal(t, entry.EndHour-entry.StartHour, booking.TotalHours(slots))
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, slots[i-1].EndHour(), slots[i].StartHour())
		}
	})
}
