package get_opening_hours

import (
	"context"

	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	ListOpeningHours(ctx context.Context) (*models.OpeningHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
