package domain

import "time"

// BookingEventType type of a booking lifecycle event
type BookingEventType string

const (
	EventBookingCreated   BookingEventType = "booking.created"
	EventBookingConfirmed BookingEventType = "booking.confirmed"
	EventBookingCanceled  BookingEventType = "booking.canceled"
)

// BookingEvent is emitted after a booking is created or changes status
type BookingEvent struct {
	ID         string
	Type       BookingEventType
	Booking    Booking
	OccurredAt time.Time
}
