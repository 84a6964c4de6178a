package models

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// Request модели

// UpdateOpeningHoursRequest новые часы работы для дня недели
type UpdateOpeningHoursRequest struct {
	OpenTime    string
	CloseTime   string
	SlotMinutes int
}

// BlockSlotRequest запрос на блокировку слота
type BlockSlotRequest struct {
	Date      time.Time
	SlotStart string
	Reason    *string
}

// Response модели

// OpeningHoursResponse часы работы одного дня недели
type OpeningHoursResponse struct {
	DayOfWeek     int       `json:"dayOfWeek"`
	OpenTime      string    `json:"openTime"`
	CloseTime     string    `json:"closeTime"`
	SlotMinutes   int       `json:"slotMinutes"`
	WrapsMidnight bool      `json:"wrapsMidnight"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// OpeningHoursListResponse часы работы по дням недели
type OpeningHoursListResponse struct {
	OpeningHours []OpeningHoursResponse `json:"openingHours"`
}

// BlockedSlotResponse заблокированный слот
type BlockedSlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Start     string    `json:"start"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedSlotListResponse список заблокированных слотов
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// Методы конвертации

// ToDomainOpeningHours конвертирует request в domain модель
func (r *UpdateOpeningHoursRequest) ToDomainOpeningHours(dayOfWeek int) *domain.OpeningHours {
	return &domain.OpeningHours{
		DayOfWeek:   dayOfWeek,
		OpenTime:    types.TimeString(r.OpenTime),
		CloseTime:   types.TimeString(r.CloseTime),
		SlotMinutes: r.SlotMinutes,
	}
}

// FromDomainOpeningHours конвертирует domain модель в DTO
func FromDomainOpeningHours(h *domain.OpeningHours) *OpeningHoursResponse {
	if h == nil {
		return nil
	}
	return &OpeningHoursResponse{
		DayOfWeek:     h.DayOfWeek,
		OpenTime:      h.OpenTime.String(),
		CloseTime:     h.CloseTime.String(),
		SlotMinutes:   h.SlotMinutes,
		WrapsMidnight: h.WrapsMidnight(),
		UpdatedAt:     h.UpdatedAt,
	}
}

// FromDomainOpeningHoursList конвертирует список domain моделей в DTO
func FromDomainOpeningHoursList(hours []*domain.OpeningHours) *OpeningHoursListResponse {
	resp := &OpeningHoursListResponse{
		OpeningHours: make([]OpeningHoursResponse, 0, len(hours)),
	}
	for _, h := range hours {
		if r := FromDomainOpeningHours(h); r != nil {
			resp.OpeningHours = append(resp.OpeningHours, *r)
		}
	}
	return resp
}

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(s *domain.BlockedSlot) *BlockedSlotResponse {
	if s == nil {
		return nil
	}
	return &BlockedSlotResponse{
		ID:        s.ID,
		Date:      s.BookingDate.Format(domain.DateFormat),
		Start:     s.SlotStart.String(),
		Reason:    s.Reason,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainBlockedSlotList конвертирует список domain моделей в DTO
func FromDomainBlockedSlotList(slots []*domain.BlockedSlot) *BlockedSlotListResponse {
	resp := &BlockedSlotListResponse{
		BlockedSlots: make([]BlockedSlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		if r := FromDomainBlockedSlot(s); r != nil {
			resp.BlockedSlots = append(resp.BlockedSlots, *r)
		}
	}
	return resp
}
