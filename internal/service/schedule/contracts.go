package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// OpeningHoursRepository интерфейс репозитория часов работы
type OpeningHoursRepository interface {
	GetByDayOfWeek(ctx context.Context, dayOfWeek int) (*domain.OpeningHours, error)
	List(ctx context.Context) ([]*domain.OpeningHours, error)
	Upsert(ctx context.Context, hours *domain.OpeningHours) (*domain.OpeningHours, error)
	Delete(ctx context.Context, dayOfWeek int) error
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]*domain.BlockedSlot, error)
	Delete(ctx context.Context, date time.Time, start types.TimeString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
