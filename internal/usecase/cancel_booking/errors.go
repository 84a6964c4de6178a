package cancel_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается, когда не передан ни id, ни пара (дата, начало слота)
	ErrInvalidInput = fmt.Errorf("%w: cancel_booking: booking id or date and slot start required", domain.ErrValidation)

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: cancel_booking: booking not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
