//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"chartrettes-rooms/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestHolidayPeriod(t *testing.T) {
	period := schedule.HolidayPeriod{
		Start: date(2025, 10, 18),
		End:   date(2025, 11, 2),
		Label: "Vacances de la Toussaint",
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, period.Contains(date(2025, 10, 18)))
		assert.True(t, period.Contains(date(2025, 11, 2)))
		assert.True(t, period.Contains(date(2025, 10, 25)))
		assert.False(t, period.Contains(date(2025, 10, 17)))
		assert.False(t, period.Contains(date(2025, 11, 3)))
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		assert.True(t, period.Contains(time.Date(2025, 11, 2, 23, 59, 0, 0, time.UTC)))
	})
}

func TestHolidayCalendar(t *testing.T) {
	cal := schedule.HolidayCalendar{
		"2024-2025": {
			{Start: date(2025, 2, 15), End: date(2025, 3, 2), Label: "Vacances d'hiver"},
		},
		"2025-2026": {
			{Start: date(2025, 12, 20), End: date(2026, 1, 4), Label: "Vacances de Noël"},
		},
	}

	t.Run("matches periods across school years", func(t *testing.T) {
		assert.True(t, cal.IsHoliday(date(2025, 2, 20)))
		assert.True(t, cal.IsHoliday(date(2025, 12, 25)))
		assert.False(t, cal.IsHoliday(date(2025, 5, 12)))
	})

	t.Run("unconfigured years fail open", func(t *testing.T) {
		// No calendar for 2030: nothing is excluded rather than everything.
		assert.False(t, cal.IsHoliday(date(2030, 12, 25)))
	})

	t.Run("empty calendar excludes nothing", func(t *testing.T) {
		assert.False(t, schedule.HolidayCalendar{}.IsHoliday(date(2025, 2, 20)))
		assert.False(t, schedule.HolidayCalendar(nil).IsHoliday(date(2025, 2, 20)))
	})
}
