package bootstrap

import (
	"chartrettes-rooms/internal/domain/schedule"
	"chartrettes-rooms/internal/infra/calendar"
	"chartrettes-rooms/internal/pkg/config"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewHolidayCalendar,
	),
)

func NewHolidayCalendar(cfg config.Config) (schedule.HolidayCalendar, error) {
	return calendar.Load(cfg.Calendar)
}
