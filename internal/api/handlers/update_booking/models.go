package update_booking

import "github.com/m04kA/SMC-PitchBooking/internal/service/bookings/models"

// UpdateBookingRequest HTTP запрос на изменение бронирования, все поля опциональны
type UpdateBookingRequest struct {
	Status *string `json:"status,omitempty"` // "confirmed" или "canceled"
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Note   *string `json:"note,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		Status: r.Status,
		Name:   r.Name,
		Phone:  r.Phone,
		Note:   r.Note,
	}
}
