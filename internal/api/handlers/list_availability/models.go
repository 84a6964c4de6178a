package list_availability

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-PitchBooking/internal/usecase/get_availability"
)

// SlotResponse слот сетки
type SlotResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"` // available | booked | blocked | past
}

// DayResponse слоты одного дня
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// ToUseCaseRequest разбирает query параметры from и days; пустые значения дают значения по умолчанию
func ToUseCaseRequest(from, days string) (*getAvailability.Request, error) {
	req := &getAvailability.Request{}

	if from != "" {
		date, err := domain.ParseDate(from)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.From = date
	}

	if days != "" {
		n, err := strconv.Atoi(days)
		if err != nil {
			return nil, fmt.Errorf("days: %w", err)
		}
		if n < domain.MinAvailableDays || n > domain.MaxAvailableDays {
			return nil, fmt.Errorf("days: %d out of range", n)
		}
		req.Days = n
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) []DayResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		slots := make([]SlotResponse, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, SlotResponse{
				Start:  s.Start.String(),
				End:    s.End.String(),
				Status: string(s.Status),
			})
		}
		days = append(days, DayResponse{
			Date:  d.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}
	return days
}
