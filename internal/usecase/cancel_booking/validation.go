package cancel_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет, что бронирование можно однозначно определить
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BookingID) != "" {
		return nil
	}

	if req.Date.IsZero() || req.SlotStart == "" {
		return ErrInvalidInput
	}
	if err := req.SlotStart.Validate(); err != nil {
		return fmt.Errorf("%w: slot start: %v", ErrInvalidInput, err)
	}
	return nil
}
