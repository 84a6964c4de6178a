package domain

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// OpeningHours represents the working window of the pitch for one day of week.
// CloseTime earlier than OpenTime means the window crosses midnight.
type OpeningHours struct {
	DayOfWeek   int // 0 = Sunday ... 6 = Saturday
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	SlotMinutes int
	UpdatedAt   time.Time
}

// WrapsMidnight returns true if the window ends on the next calendar day
func (h *OpeningHours) WrapsMidnight() bool {
	return h.CloseTime.IsBefore(h.OpenTime)
}

// DayOfWeek returns the 0..6 (Sunday-based) day index of date
func DayOfWeek(date time.Time) int {
	return int(date.In(facilityLocation).Weekday())
}
