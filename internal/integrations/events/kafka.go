package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

const (
	headerEventID   = "event_id"
	headerEventType = "event_type"

	// одно событие на запись, ждать заполнения пачки не нужно
	batchTimeout = 10 * time.Millisecond
)

// KafkaSink публикует события в топик Kafka с ключом = ID бронирования,
// чтобы события одного бронирования попадали в одну партицию
type KafkaSink struct {
	writer MessageWriter
}

// NewKafkaSink создает получателя поверх kafka.Writer
func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return NewKafkaSinkWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	})
}

// NewKafkaSinkWithWriter создает получателя поверх произвольного writer (для тестов)
func NewKafkaSinkWithWriter(writer MessageWriter) *KafkaSink {
	return &KafkaSink{writer: writer}
}

func (s *KafkaSink) Name() string {
	return "kafka"
}

// Publish сериализует событие в JSON и записывает одно сообщение
func (s *KafkaSink) Publish(ctx context.Context, event domain.BookingEvent) error {
	value, err := json.Marshal(FromDomainEvent(event))
	if err != nil {
		return fmt.Errorf("kafka sink: marshal event %s: %w", event.ID, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Booking.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(event.ID)},
			{Key: headerEventType, Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka sink: write event %s: %w", event.ID, err)
	}
	return nil
}

// Close закрывает writer
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
