package domain

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// BlockedSlot is an admin override that makes a slot unbookable
type BlockedSlot struct {
	ID          int64
	BookingDate time.Time
	SlotStart   types.TimeString
	Reason      *string
	CreatedAt   time.Time
}
