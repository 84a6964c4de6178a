package availability

import (
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// Classify выбирает статус слота по приоритету: blocked > booked > past > available
func Classify(blocked, booked, past bool) domain.SlotStatus {
	switch {
	case blocked:
		return domain.SlotBlocked
	case booked:
		return domain.SlotBooked
	case past:
		return domain.SlotPast
	default:
		return domain.SlotAvailable
	}
}

// IsPast true, если начало слота строго раньше now.
// Слот, начинающийся ровно в now, прошедшим не считается.
func IsPast(date time.Time, startOffset time.Duration, now time.Time) bool {
	return domain.AtOffset(date, startOffset).Before(now)
}

// ResolveDay классифицирует слоты одного дня.
// hours == nil означает, что площадка в этот день закрыта, и дает пустой список.
// booked и blocked содержат начала слотов; входные данные не изменяются.
func ResolveDay(
	date time.Time,
	hours *domain.OpeningHours,
	booked map[types.TimeString]struct{},
	blocked map[types.TimeString]struct{},
	now time.Time,
) ([]domain.Slot, error) {
	if hours == nil {
		return []domain.Slot{}, nil
	}

	grid, err := GenerateSlots(hours.OpenTime, hours.CloseTime, hours.SlotMinutes)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0, len(grid))
	for _, ts := range grid {
		_, isBlocked := blocked[ts.Start]
		_, isBooked := booked[ts.Start]

		slots = append(slots, domain.Slot{
			Start:  ts.Start,
			End:    ts.End,
			Status: Classify(isBlocked, isBooked, IsPast(date, ts.StartOffset, now)),
		})
	}
	return slots, nil
}

// RangeInput данные для расчета доступности на несколько дней
type RangeInput struct {
	From     time.Time
	Days     int
	Hours    []*domain.OpeningHours // не более одной записи на день недели
	Bookings []*domain.Booking      // активные бронирования в диапазоне
	Blocked  []*domain.BlockedSlot  // блокировки в диапазоне
	Now      time.Time
}

// ResolveRange рассчитывает доступность для Days последовательных дней начиная с From
func ResolveRange(in RangeInput) ([]domain.DayAvailability, error) {
	hoursByDay := make(map[int]*domain.OpeningHours, len(in.Hours))
	for _, h := range in.Hours {
		hoursByDay[h.DayOfWeek] = h
	}

	booked := make(map[string]map[types.TimeString]struct{})
	for _, b := range in.Bookings {
		if !b.IsActive() {
			continue
		}
		addToIndex(booked, b.BookingDate, b.SlotStart)
	}

	blocked := make(map[string]map[types.TimeString]struct{})
	for _, bs := range in.Blocked {
		addToIndex(blocked, bs.BookingDate, bs.SlotStart)
	}

	from := domain.StartOfDay(in.From)
	result := make([]domain.DayAvailability, 0, in.Days)

	for i := 0; i < in.Days; i++ {
		date := from.AddDate(0, 0, i)
		key := date.Format(domain.DateFormat)

		slots, err := ResolveDay(date, hoursByDay[domain.DayOfWeek(date)], booked[key], blocked[key], in.Now)
		if err != nil {
			return nil, err
		}

		result = append(result, domain.DayAvailability{Date: date, Slots: slots})
	}

	return result, nil
}

func addToIndex(index map[string]map[types.TimeString]struct{}, date time.Time, start types.TimeString) {
	key := domain.StartOfDay(date).Format(domain.DateFormat)
	if index[key] == nil {
		index[key] = make(map[types.TimeString]struct{})
	}
	index[key][start] = struct{}{}
}
