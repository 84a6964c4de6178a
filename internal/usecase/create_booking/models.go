package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date      time.Time        // Дата (полночь в часовом поясе площадки)
	SlotStart types.TimeString // Начало слота, "21:00"
	SlotEnd   types.TimeString // Конец слота, "22:00"
	Name      string
	Phone     string
	Note      *string
}

// Response созданное бронирование и данные для подтверждения пользователю
type Response struct {
	Booking      *domain.Booking
	SummaryText  string // однострочное описание бронирования
	ShareLink    string // ссылка wa.me с текстом описания
	CalendarText string // iCalendar (RFC 5545)
}
