package models

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// Request модели

// ListBookingsRequest фильтры списка бронирований администратора
type ListBookingsRequest struct {
	Date  *time.Time // точная дата
	Phone *string    // подстрока телефона
	Name  *string    // подстрока имени без учета регистра
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	filter := domain.BookingsFilter{
		Phone: r.Phone,
		Name:  r.Name,
	}
	if r.Date != nil {
		date := domain.CalendarDate(*r.Date)
		filter.Date = &date
	}
	return filter
}

// UpdateBookingRequest изменение бронирования администратором.
// Все поля опциональны, но хотя бы одно должно быть указано.
type UpdateBookingRequest struct {
	Status *string
	Name   *string
	Phone  *string
	Note   *string // пустая строка очищает заметку
}

// IsEmpty возвращает true, если ничего не меняется
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.Name == nil && r.Phone == nil && r.Note == nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`  // "2026-10-20"
	Start     string    `json:"start"` // "21:00"
	End       string    `json:"end"`   // "22:00"
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Note      *string   `json:"note,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		Date:      b.BookingDate.Format(domain.DateFormat),
		Start:     b.SlotStart.String(),
		End:       b.SlotEnd.String(),
		Name:      b.Name,
		Phone:     b.Phone,
		Note:      b.Note,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
