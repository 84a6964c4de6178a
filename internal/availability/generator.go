// Package availability generates the slot grid of a day and classifies
// each slot against bookings, admin blocks and the current time.
package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

const day = 24 * time.Hour

var (
	// ErrInvalidSlotLength длина слота должна быть положительной
	ErrInvalidSlotLength = errors.New("availability: slot length must be positive")

	// ErrInvalidWindow время открытия или закрытия не в формате HH:MM
	ErrInvalidWindow = errors.New("availability: invalid opening window")
)

// Window рабочее окно дня как смещения от полуночи.
// Если закрытие раньше открытия, к Close прибавляются сутки.
type Window struct {
	Open  time.Duration
	Close time.Duration
}

// NewWindow строит окно из времени открытия и закрытия
func NewWindow(open, close types.TimeString) (Window, error) {
	if err := open.Validate(); err != nil {
		return Window{}, fmt.Errorf("%w: open: %v", ErrInvalidWindow, err)
	}
	if err := close.Validate(); err != nil {
		return Window{}, fmt.Errorf("%w: close: %v", ErrInvalidWindow, err)
	}

	w := Window{Open: open.Offset(), Close: close.Offset()}
	if w.Close < w.Open {
		w.Close += day
	}
	return w, nil
}

// Wraps true, если окно заканчивается на следующие сутки
func (w Window) Wraps() bool {
	return w.Close > day
}

// OffsetOf переводит время суток в смещение внутри окна.
// Для ночного окна время раньше открытия относится к следующим суткам.
func (w Window) OffsetOf(t types.TimeString) time.Duration {
	offset := t.Offset()
	if w.Wraps() && offset < w.Open {
		offset += day
	}
	return offset
}

// Contains проверяет, что интервал [start, end) целиком внутри окна
func (w Window) Contains(start, end types.TimeString) bool {
	s := w.OffsetOf(start)
	e := w.OffsetOf(end)
	// конец, совпадающий с открытием, означает конец суток для ночного окна
	if e <= s {
		e += day
	}
	return s >= w.Open && e <= w.Close && s < e
}

// TimeSlot интервал сетки слотов.
// StartOffset и EndOffset отсчитываются от полуночи дня открытия и могут превышать 24 часа.
type TimeSlot struct {
	Start       types.TimeString
	End         types.TimeString
	StartOffset time.Duration
	EndOffset   time.Duration
}

// GenerateSlots возвращает упорядоченные слоты фиксированной длины от открытия до закрытия.
// Неполный последний слот отбрасывается, пустое окно (open == close) дает пустой список.
func GenerateSlots(open, close types.TimeString, slotMinutes int) ([]TimeSlot, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotLength, slotMinutes)
	}

	w, err := NewWindow(open, close)
	if err != nil {
		return nil, err
	}

	return w.Slots(time.Duration(slotMinutes) * time.Minute), nil
}

// Slots нарезает окно на слоты длиной length
func (w Window) Slots(length time.Duration) []TimeSlot {
	if length <= 0 {
		return []TimeSlot{}
	}

	slots := make([]TimeSlot, 0, int((w.Close-w.Open)/length))
	for start := w.Open; start+length <= w.Close; start += length {
		end := start + length
		slots = append(slots, TimeSlot{
			Start:       types.NewTimeStringFromMinutes(int(start / time.Minute)),
			End:         types.NewTimeStringFromMinutes(int(end / time.Minute)),
			StartOffset: start,
			EndOffset:   end,
		})
	}
	return slots
}

// Find возвращает слот с заданными началом и концом, если он есть в сетке
func Find(slots []TimeSlot, start, end types.TimeString) (TimeSlot, bool) {
	for _, s := range slots {
		if s.Start == start && s.End == end {
			return s, true
		}
	}
	return TimeSlot{}, false
}
