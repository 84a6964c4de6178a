package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// normalizeRequest подставляет значения по умолчанию и проверяет диапазон дней
func normalizeRequest(req *Request, now time.Time) (from time.Time, days int, err error) {
	days = req.Days
	if days == 0 {
		days = domain.DefaultAvailableDays
	}
	if days < domain.MinAvailableDays || days > domain.MaxAvailableDays {
		return time.Time{}, 0, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	from = domain.StartOfDay(now)
	if !req.From.IsZero() {
		from = domain.CalendarDate(req.From)
	}

	return from, days, nil
}
