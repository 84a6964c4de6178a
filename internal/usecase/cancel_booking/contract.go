package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	FindBySlot(ctx context.Context, date time.Time, start types.TimeString) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus) (*domain.Booking, error)
}

// EventDispatcher рассылает события бронирований (Kafka, Telegram)
type EventDispatcher interface {
	Dispatch(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking)
}

// Metrics учет исходов операций с бронированиями
type Metrics interface {
	BookingOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
