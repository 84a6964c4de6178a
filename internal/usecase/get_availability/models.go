package get_availability

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// Request модель запроса доступности
type Request struct {
	From time.Time // нулевое значение означает сегодня
	Days int       // 0 означает значение по умолчанию (15)
}

// Response доступность по дням, в порядке дат
type Response struct {
	Days []domain.DayAvailability
}
