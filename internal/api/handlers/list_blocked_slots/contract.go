package list_blocked_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedSlots(ctx context.Context, date time.Time) (*models.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
