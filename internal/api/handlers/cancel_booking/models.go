package cancel_booking

import (
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	cancelBooking "github.com/m04kA/SMC-PitchBooking/internal/usecase/cancel_booking"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// CancelBookingRequest либо bookingId, либо date + start
type CancelBookingRequest struct {
	BookingID string `json:"bookingId,omitempty"`
	Date      string `json:"date,omitempty"`
	Start     string `json:"start,omitempty"`
}

// CancelBookingResponse результат отмены
type CancelBookingResponse struct {
	OK              bool   `json:"ok"`
	AlreadyCanceled bool   `json:"alreadyCanceled"`
	Message         string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest() (*cancelBooking.Request, error) {
	req := &cancelBooking.Request{
		BookingID: r.BookingID,
		SlotStart: types.TimeString(r.Start),
	}

	if r.BookingID == "" && r.Date != "" {
		date, err := domain.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	return req, nil
}
