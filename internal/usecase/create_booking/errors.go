package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking: invalid input data", domain.ErrValidation)

	// ErrInvalidName возвращается, когда имя короче 2 или длиннее 50 символов
	ErrInvalidName = fmt.Errorf("%w: invalid name", ErrInvalidInput)

	// ErrInvalidPhone возвращается, когда телефон не состоит из 10-11 цифр
	ErrInvalidPhone = fmt.Errorf("%w: invalid phone", ErrInvalidInput)

	// ErrInvalidTime возвращается при некорректном формате времени слота
	ErrInvalidTime = fmt.Errorf("%w: invalid slot time", ErrInvalidInput)

	// ErrNoteTooLong возвращается, когда заметка длиннее допустимого
	ErrNoteTooLong = fmt.Errorf("%w: note is too long", ErrInvalidInput)

	// ErrOutsideHorizon возвращается, когда дата вне окна [сегодня, сегодня+15]
	ErrOutsideHorizon = fmt.Errorf("%w: create_booking: date is outside the booking horizon", domain.ErrValidation)

	// ErrSlotInPast возвращается, когда начало слота уже прошло
	ErrSlotInPast = fmt.Errorf("%w: create_booking: slot start is in the past", domain.ErrValidation)

	// ErrNoOpeningHours возвращается, когда для дня недели не заданы часы работы
	ErrNoOpeningHours = fmt.Errorf("%w: create_booking: no opening hours for this day", domain.ErrConfiguration)

	// ErrOutsideOpeningHours возвращается, когда слот выходит за часы работы
	ErrOutsideOpeningHours = fmt.Errorf("%w: create_booking: slot is outside opening hours", domain.ErrValidation)

	// ErrInvalidTimeSlot возвращается, когда интервал не совпадает ни с одним слотом сетки
	ErrInvalidTimeSlot = fmt.Errorf("%w: create_booking: interval does not match the slot grid", domain.ErrValidation)

	// ErrSlotBlocked возвращается, когда слот заблокирован администратором
	ErrSlotBlocked = fmt.Errorf("%w: create_booking: slot is blocked", domain.ErrValidation)

	// ErrSlotNotAvailable возвращается, когда слот уже занят активным бронированием
	ErrSlotNotAvailable = fmt.Errorf("%w: create_booking: slot is not available", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
