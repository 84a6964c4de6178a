package domain

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// ParseBookingStatus converts a string into a known BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch status := BookingStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return status, true
	default:
		return "", false
	}
}

// Booking is a reservation of one slot of the pitch.
// At most one non-canceled booking exists per (BookingDate, SlotStart).
type Booking struct {
	ID          string
	BookingDate time.Time // midnight in the facility timezone
	SlotStart   types.TimeString
	SlotEnd     types.TimeString
	Name        string
	Phone       string
	Note        *string
	Status      BookingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCanceled
}

// IsCanceled returns true if the booking has been canceled
func (b *Booking) IsCanceled() bool {
	return b.Status == StatusCanceled
}

// CanTransitionTo reports whether the admin may move the booking to next.
// Only pending bookings move, to confirmed or canceled; nothing goes back to pending.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status != StatusPending {
		return false
	}
	return next == StatusConfirmed || next == StatusCanceled
}

// BookingsFilter фильтр списка бронирований администратора
type BookingsFilter struct {
	Date  *time.Time // точная дата (опционально)
	Phone *string    // подстрока телефона (опционально)
	Name  *string    // подстрока имени без учета регистра (опционально)
}

// BookingDetails изменяемые администратором контактные данные.
// nil поле не изменяется.
type BookingDetails struct {
	Name  *string
	Phone *string
	Note  *string
}

// IsEmpty returns true if nothing is to be changed
func (d BookingDetails) IsEmpty() bool {
	return d.Name == nil && d.Phone == nil && d.Note == nil
}
