package schedule

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

func validateDayOfWeek(day int) error {
	if day < 0 || day > 6 {
		return fmt.Errorf("%w: got %d", ErrInvalidDayOfWeek, day)
	}
	return nil
}

// validateOpeningHours проверяет часы работы.
// open == close допустимо и означает пустое окно (слотов нет).
func validateOpeningHours(req *models.UpdateOpeningHoursRequest) error {
	if _, err := types.NewTimeStringFromString(req.OpenTime); err != nil {
		return fmt.Errorf("%w: open: %v", ErrInvalidTime, err)
	}
	if _, err := types.NewTimeStringFromString(req.CloseTime); err != nil {
		return fmt.Errorf("%w: close: %v", ErrInvalidTime, err)
	}
	if req.SlotMinutes < domain.MinSlotDurationMinutes || req.SlotMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: got %d", ErrInvalidSlotMinutes, req.SlotMinutes)
	}
	return nil
}

// normalizeReason обрезает пробелы; пустая причина превращается в nil
func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxBlockReasonLength {
		return nil, fmt.Errorf("%w: max %d characters", ErrReasonTooLong, domain.MaxBlockReasonLength)
	}
	return &trimmed, nil
}
