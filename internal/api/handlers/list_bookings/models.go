package list_bookings

import (
	"strings"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров; пустые параметры не фильтруют
func ToServiceRequest(dateStr, phoneStr, nameStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if phone := strings.TrimSpace(phoneStr); phone != "" {
		req.Phone = &phone
	}

	if name := strings.TrimSpace(nameStr); name != "" {
		req.Name = &name
	}

	return req, nil
}
