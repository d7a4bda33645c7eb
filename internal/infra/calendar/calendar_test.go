//go:build unit

package calendar_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"chartrettes-rooms/internal/infra/calendar"
	"chartrettes-rooms/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCalendarFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holidays.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path falls back to bundled calendar", func(t *testing.T) {
		cal, err := calendar.Load(config.CalendarConfig{})
		require.NoError(t, err)

		assert.True(t, cal.IsHoliday(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)))
		assert.False(t, cal.IsHoliday(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("loads periods from file", func(t *testing.T) {
		path := writeCalendarFile(t, `{
			"2026-2027": [
				{"label": "Vacances de la Toussaint", "start": "2026-10-17", "end": "2026-11-01"}
			]
		}`)

		cal, err := calendar.Load(config.CalendarConfig{HolidaysPath: path})
		require.NoError(t, err)

		assert.True(t, cal.IsHoliday(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))
		assert.False(t, cal.IsHoliday(time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := calendar.Load(config.CalendarConfig{HolidaysPath: "/nonexistent/holidays.json"})
		assert.Error(t, err)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		path := writeCalendarFile(t, `{"2026-2027": [`)
		_, err := calendar.Load(config.CalendarConfig{HolidaysPath: path})
		assert.Error(t, err)
	})

	t.Run("invalid date is an error", func(t *testing.T) {
		path := writeCalendarFile(t, `{
			"2026-2027": [{"label": "x", "start": "17/10/2026", "end": "2026-11-01"}]
		}`)
		_, err := calendar.Load(config.CalendarConfig{HolidaysPath: path})
		assert.Error(t, err)
	})

	t.Run("inverted period is an error", func(t *testing.T) {
		path := writeCalendarFile(t, `{
			"2026-2027": [{"label": "x", "start": "2026-11-01", "end": "2026-10-17"}]
		}`)
		_, err := calendar.Load(config.CalendarConfig{HolidaysPath: path})
		assert.Error(t, err)
	})
}
