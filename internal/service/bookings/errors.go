package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: bookings: booking not found", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: bookings: invalid input data", domain.ErrValidation)

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = fmt.Errorf("%w: invalid booking status", ErrInvalidInput)

	// ErrInvalidName возвращается, когда имя короче 2 или длиннее 50 символов
	ErrInvalidName = fmt.Errorf("%w: invalid name", ErrInvalidInput)

	// ErrInvalidPhone возвращается, когда телефон не состоит из 10-11 цифр
	ErrInvalidPhone = fmt.Errorf("%w: invalid phone", ErrInvalidInput)

	// ErrNoteTooLong возвращается, когда заметка длиннее допустимого
	ErrNoteTooLong = fmt.Errorf("%w: note is too long", ErrInvalidInput)

	// ErrInvalidTransition возвращается, когда переход статуса запрещен
	// (подтвержденное и отмененное бронирование администратор не меняет)
	ErrInvalidTransition = fmt.Errorf("%w: bookings: status transition is not allowed", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
