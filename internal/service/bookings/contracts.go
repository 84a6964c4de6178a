package bookings

import (
	"context"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	TransitionStatus(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus) (*domain.Booking, error)
	UpdateDetails(ctx context.Context, id string, details domain.BookingDetails) (*domain.Booking, error)
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
