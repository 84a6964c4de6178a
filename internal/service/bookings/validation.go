package bookings

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/internal/service/bookings/models"
)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// parseUpdate проверяет запрос и разделяет его на новый статус и контактные данные
func parseUpdate(req *models.UpdateBookingRequest) (*domain.BookingStatus, domain.BookingDetails, error) {
	var details domain.BookingDetails

	if req.IsEmpty() {
		return nil, details, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		s, ok := domain.ParseBookingStatus(strings.TrimSpace(*req.Status))
		if !ok {
			return nil, details, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		status = &s
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if n := utf8.RuneCountInString(name); n < domain.MinNameLength || n > domain.MaxNameLength {
			return nil, details, fmt.Errorf("%w: length %d", ErrInvalidName, n)
		}
		details.Name = &name
	}

	if req.Phone != nil {
		phone := phoneSeparators.Replace(strings.TrimSpace(*req.Phone))
		if !isPhone(phone) {
			return nil, details, fmt.Errorf("%w: %q", ErrInvalidPhone, *req.Phone)
		}
		details.Phone = &phone
	}

	if req.Note != nil {
		note := strings.TrimSpace(*req.Note)
		if utf8.RuneCountInString(note) > domain.MaxNoteLength {
			return nil, details, ErrNoteTooLong
		}
		details.Note = &note
	}

	return status, details, nil
}

func isPhone(s string) bool {
	if len(s) < domain.MinPhoneDigits || len(s) > domain.MaxPhoneDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
