package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// Request бронирование определяется либо по BookingID, либо по паре Date + SlotStart
type Request struct {
	BookingID string
	Date      time.Time
	SlotStart types.TimeString
}

// Response результат отмены.
// AlreadyCanceled == true означает, что бронирование было отменено раньше; это не ошибка.
type Response struct {
	Booking         *domain.Booking
	AlreadyCanceled bool
}
