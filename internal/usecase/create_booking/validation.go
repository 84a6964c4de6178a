package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-PitchBooking/internal/availability"
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// phoneSeparators символы, допустимые при вводе телефона и удаляемые перед проверкой
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// validateRequest проверяет формат полей и возвращает нормализованную копию запроса
func validateRequest(req *Request) (*Request, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.SlotStart.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidTime, err)
	}
	if err := req.SlotEnd.Validate(); err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidTime, err)
	}

	name := strings.TrimSpace(req.Name)
	if n := utf8.RuneCountInString(name); n < domain.MinNameLength || n > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: length %d, expected %d-%d", ErrInvalidName, n, domain.MinNameLength, domain.MaxNameLength)
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	var note *string
	if req.Note != nil {
		trimmed := strings.TrimSpace(*req.Note)
		if utf8.RuneCountInString(trimmed) > domain.MaxNoteLength {
			return nil, fmt.Errorf("%w: max %d characters", ErrNoteTooLong, domain.MaxNoteLength)
		}
		if trimmed != "" {
			note = &trimmed
		}
	}

	return &Request{
		Date:      domain.CalendarDate(req.Date),
		SlotStart: req.SlotStart,
		SlotEnd:   req.SlotEnd,
		Name:      name,
		Phone:     phone,
		Note:      note,
	}, nil
}

// normalizePhone удаляет разделители и проверяет, что осталось 10-11 цифр
func normalizePhone(raw string) (string, error) {
	phone := phoneSeparators.Replace(strings.TrimSpace(raw))
	if n := len(phone); n < domain.MinPhoneDigits || n > domain.MaxPhoneDigits {
		return "", fmt.Errorf("%w: %d digits, expected %d-%d", ErrInvalidPhone, n, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: only digits are allowed", ErrInvalidPhone)
		}
	}
	return phone, nil
}

// validateHorizon проверяет, что дата в диапазоне [сегодня, сегодня+BookingHorizonDays] включительно
func validateHorizon(date time.Time, now time.Time) error {
	today := domain.StartOfDay(now)
	last := today.AddDate(0, 0, domain.BookingHorizonDays)

	if date.Before(today) || date.After(last) {
		return fmt.Errorf("%w: %s not in [%s, %s]", ErrOutsideHorizon,
			date.Format(domain.DateFormat), today.Format(domain.DateFormat), last.Format(domain.DateFormat))
	}
	return nil
}

// validateNotPast проверяет, что начало слота не строго раньше now
func validateNotPast(slotStart time.Time, now time.Time) error {
	if slotStart.Before(now) {
		return fmt.Errorf("%w: %s", ErrSlotInPast, slotStart.Format(time.DateTime))
	}
	return nil
}

// resolveSlot проверяет интервал по часам работы и возвращает слот сетки
func resolveSlot(hours *domain.OpeningHours, req *Request) (availability.TimeSlot, error) {
	window, err := availability.NewWindow(hours.OpenTime, hours.CloseTime)
	if err != nil {
		return availability.TimeSlot{}, fmt.Errorf("%w: broken opening hours for day %d: %v", ErrInternal, hours.DayOfWeek, err)
	}

	if !window.Contains(req.SlotStart, req.SlotEnd) {
		return availability.TimeSlot{}, fmt.Errorf("%w: %s-%s not within %s-%s", ErrOutsideOpeningHours,
			req.SlotStart, req.SlotEnd, hours.OpenTime, hours.CloseTime)
	}

	slot, ok := availability.Find(window.Slots(time.Duration(hours.SlotMinutes)*time.Minute), req.SlotStart, req.SlotEnd)
	if !ok {
		return availability.TimeSlot{}, fmt.Errorf("%w: %s-%s with %d minute slots", ErrInvalidTimeSlot,
			req.SlotStart, req.SlotEnd, hours.SlotMinutes)
	}

	return slot, nil
}
