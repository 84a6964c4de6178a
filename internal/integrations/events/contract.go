package events

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// Sink получатель событий бронирований (Kafka, Telegram)
type Sink interface {
	Name() string
	Publish(ctx context.Context, event domain.BookingEvent) error
}

// MessageWriter подмножество *kafka.Writer, используемое KafkaSink
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Metrics учет доставки событий
type Metrics interface {
	EventDispatched(sink, eventType string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
