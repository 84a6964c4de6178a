package block_slot

import (
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule/models"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date   string  `json:"date"`  // "2026-10-25"
	Start  string  `json:"start"` // "20:00"
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *BlockSlotRequest) ToServiceRequest() (*models.BlockSlotRequest, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &models.BlockSlotRequest{
		Date:      date,
		SlotStart: r.Start,
		Reason:    r.Reason,
	}, nil
}
