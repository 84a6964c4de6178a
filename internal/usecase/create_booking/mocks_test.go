package create_booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Booking) *domain.Booking); ok {
		return fn(ctx, booking), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type mockOpeningHoursRepo struct {
	mock.Mock
}

func (m *mockOpeningHoursRepo) GetByDayOfWeek(ctx context.Context, dayOfWeek int) (*domain.OpeningHours, error) {
	args := m.Called(ctx, dayOfWeek)
	if fn, ok := args.Get(0).(func(context.Context, int) *domain.OpeningHours); ok {
		return fn(ctx, dayOfWeek), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningHours), args.Error(1)
}

type mockBlockedSlotRepo struct {
	mock.Mock
}

func (m *mockBlockedSlotRepo) Exists(ctx context.Context, date time.Time, start types.TimeString) (bool, error) {
	args := m.Called(ctx, date, start)
	return args.Bool(0), args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking) {
	m.Called(ctx, eventType, booking)
}

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *recordingMetrics) BookingOutcome(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

// memBookingStore in-memory хранилище с тем же правилом уникальности,
// что и частичный индекс bookings_active_slot_uidx
type memBookingStore struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

func (s *memBookingStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.IsActive() && b.BookingDate.Equal(booking.BookingDate) && b.SlotStart == booking.SlotStart {
			return nil, fmt.Errorf("%w: duplicate", bookingRepo.ErrSlotTaken)
		}
	}

	stored := *booking
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.bookings = append(s.bookings, &stored)
	return &stored, nil
}

func (s *memBookingStore) cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			b.Status = domain.StatusCanceled
		}
	}
}
