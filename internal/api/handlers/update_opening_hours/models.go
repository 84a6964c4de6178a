package update_opening_hours

import "github.com/m04kA/SMC-PitchBooking/internal/service/schedule/models"

// UpdateOpeningHoursRequest HTTP request model
type UpdateOpeningHoursRequest struct {
	OpenTime    string `json:"openTime"`    // "09:00"
	CloseTime   string `json:"closeTime"`   // "03:00", раньше открытия означает работу после полуночи
	SlotMinutes int    `json:"slotMinutes"` // 60
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateOpeningHoursRequest) ToServiceRequest() *models.UpdateOpeningHoursRequest {
	return &models.UpdateOpeningHoursRequest{
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
		SlotMinutes: r.SlotMinutes,
	}
}
