package events

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// EventMessage JSON представление события в Kafka
type EventMessage struct {
	EventID    string         `json:"eventId"`
	EventType  string         `json:"eventType"`
	OccurredAt time.Time      `json:"occurredAt"`
	Booking    BookingPayload `json:"booking"`
}

// BookingPayload снимок бронирования на момент события
type BookingPayload struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	SlotStart string  `json:"slotStart"`
	SlotEnd   string  `json:"slotEnd"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Note      *string `json:"note,omitempty"`
	Status    string  `json:"status"`
}

// FromDomainEvent конвертирует доменное событие в сообщение
func FromDomainEvent(event domain.BookingEvent) EventMessage {
	b := event.Booking
	return EventMessage{
		EventID:    event.ID,
		EventType:  string(event.Type),
		OccurredAt: event.OccurredAt,
		Booking: BookingPayload{
			ID:        b.ID,
			Date:      b.BookingDate.Format(domain.DateFormat),
			SlotStart: b.SlotStart.String(),
			SlotEnd:   b.SlotEnd.String(),
			Name:      b.Name,
			Phone:     b.Phone,
			Note:      b.Note,
			Status:    string(b.Status),
		},
	}
}
