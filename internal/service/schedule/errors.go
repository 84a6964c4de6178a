package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: schedule: invalid input data", domain.ErrValidation)

	// ErrInvalidDayOfWeek возвращается, когда день недели вне 0-6
	ErrInvalidDayOfWeek = fmt.Errorf("%w: day of week must be 0-6", ErrInvalidInput)

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = fmt.Errorf("%w: invalid time", ErrInvalidInput)

	// ErrInvalidSlotMinutes возвращается, когда длина слота вне допустимого диапазона
	ErrInvalidSlotMinutes = fmt.Errorf("%w: slot minutes must be between %d and %d",
		ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)

	// ErrReasonTooLong возвращается, когда причина блокировки длиннее допустимого
	ErrReasonTooLong = fmt.Errorf("%w: reason is too long", ErrInvalidInput)

	// ErrNotOnGrid возвращается, когда блокируемое время не совпадает с началом слота
	ErrNotOnGrid = fmt.Errorf("%w: schedule: slot start is not on the slot grid", domain.ErrValidation)

	// ErrAlreadyBlocked возвращается при повторной блокировке слота
	ErrAlreadyBlocked = fmt.Errorf("%w: schedule: slot already blocked", domain.ErrConflict)

	// ErrBlockedSlotNotFound возвращается, когда блокировка не найдена
	ErrBlockedSlotNotFound = fmt.Errorf("%w: schedule: blocked slot not found", domain.ErrNotFound)

	// ErrDayAlreadyClosed возвращается, когда для дня недели нет часов работы
	ErrDayAlreadyClosed = fmt.Errorf("%w: schedule: day is already closed", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
