package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// OpeningHoursRepository интерфейс репозитория часов работы
type OpeningHoursRepository interface {
	GetByDayOfWeek(ctx context.Context, dayOfWeek int) (*domain.OpeningHours, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Exists(ctx context.Context, date time.Time, start types.TimeString) (bool, error)
}

// EventDispatcher рассылает события бронирований (Kafka, Telegram)
type EventDispatcher interface {
	Dispatch(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking)
}

// Metrics учет исходов попыток бронирования
type Metrics interface {
	BookingOutcome(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
