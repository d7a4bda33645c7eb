package calendar

import (
	"encoding/json"
	"os"
	"time"

	"chartrettes-rooms/internal/domain/schedule"
	"chartrettes-rooms/internal/pkg/config"
	"chartrettes-rooms/internal/pkg/errs"
)

// periodJSON is one holiday period in the calendar file, dates as YYYY-MM-DD.
type periodJSON struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

const dateLayout = "2006-01-02"

// Load builds the school-holiday calendar. With no file configured it falls
// back to the bundled Zone C dates, so the service runs without any deployment
// asset. New school years are added by editing the JSON file.
func Load(cfg config.CalendarConfig) (schedule.HolidayCalendar, error) {
	if cfg.HolidaysPath == "" {
		return builtinCalendar(), nil
	}
	return loadFile(cfg.HolidaysPath)
}

func loadFile(path string) (schedule.HolidayCalendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read holiday calendar file")
	}

	var raw map[string][]periodJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errs.Wrap(err, "failed to parse holiday calendar file")
	}

	cal := make(schedule.HolidayCalendar, len(raw))
	for year, periods := range raw {
		converted := make([]schedule.HolidayPeriod, 0, len(periods))
		for _, p := range periods {
			start, err := time.Parse(dateLayout, p.Start)
			if err != nil {
				return nil, errs.Wrap(err, "invalid holiday start date "+p.Start)
			}
			end, err := time.Parse(dateLayout, p.End)
			if err != nil {
				return nil, errs.Wrap(err, "invalid holiday end date "+p.End)
			}
			if end.Before(start) {
				return nil, errs.New("holiday period ends before it starts: " + p.Label)
			}
			converted = append(converted, schedule.HolidayPeriod{
				Start: start,
				End:   end,
				Label: p.Label,
			})
		}
		cal[year] = converted
	}
	return cal, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// builtinCalendar covers academic Zone C (Créteil, which Seine-et-Marne
// belongs to) for the school years shipped with this release.
func builtinCalendar() schedule.HolidayCalendar {
	return schedule.HolidayCalendar{
		"2024-2025": {
			{Label: "Vacances de la Toussaint", Start: date(2024, time.October, 19), End: date(2024, time.November, 3)},
			{Label: "Vacances de Noël", Start: date(2024, time.December, 21), End: date(2025, time.January, 5)},
			{Label: "Vacances d'hiver", Start: date(2025, time.February, 15), End: date(2025, time.March, 2)},
			{Label: "Vacances de printemps", Start: date(2025, time.April, 12), End: date(2025, time.April, 27)},
			{Label: "Vacances d'été", Start: date(2025, time.July, 5), End: date(2025, time.August, 31)},
		},
		"2025-2026": {
			{Label: "Vacances de la Toussaint", Start: date(2025, time.October, 18), End: date(2025, time.November, 2)},
			{Label: "Vacances de Noël", Start: date(2025, time.December, 20), End: date(2026, time.January, 4)},
			{Label: "Vacances d'hiver", Start: date(2026, time.February, 14), End: date(2026, time.March, 1)},
			{Label: "Vacances de printemps", Start: date(2026, time.April, 11), End: date(2026, time.April, 26)},
			{Label: "Vacances d'été", Start: date(2026, time.July, 4), End: date(2026, time.August, 31)},
		},
	}
}
