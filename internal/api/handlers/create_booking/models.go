package create_booking

import (
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-PitchBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date  string  `json:"date"`  // "2026-10-20"
	Start string  `json:"start"` // "21:00"
	End   string  `json:"end"`   // "22:00"
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Note  *string `json:"note,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BookingID    string `json:"bookingId"`
	Status       string `json:"status"`
	SummaryText  string `json:"summaryText"`
	ShareLink    string `json:"shareLink"`
	CalendarText string `json:"calendarText"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат времени и контактных данных проверяет use case.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:      date,
		SlotStart: types.TimeString(r.Start),
		SlotEnd:   types.TimeString(r.End),
		Name:      r.Name,
		Phone:     r.Phone,
		Note:      r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:    resp.Booking.ID,
		Status:       string(resp.Booking.Status),
		SummaryText:  resp.SummaryText,
		ShareLink:    resp.ShareLink,
		CalendarText: resp.CalendarText,
	}
}
