package get_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

var (
	// ErrInvalidDays возвращается, когда количество дней вне диапазона 1-30
	ErrInvalidDays = fmt.Errorf("%w: get_availability: days must be between %d and %d",
		domain.ErrValidation, domain.MinAvailableDays, domain.MaxAvailableDays)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
