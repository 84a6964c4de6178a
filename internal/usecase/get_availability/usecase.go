package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PitchBooking/internal/availability"
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

// UseCase use case для расчета сетки доступности на несколько дней
type UseCase struct {
	openingHoursRepo OpeningHoursRepository
	bookingRepo      BookingRepository
	blockedSlotRepo  BlockedSlotRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	openingHoursRepo OpeningHoursRepository,
	bookingRepo BookingRepository,
	blockedSlotRepo BlockedSlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		openingHoursRepo: openingHoursRepo,
		bookingRepo:      bookingRepo,
		blockedSlotRepo:  blockedSlotRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступности.
// Данные загружаются тремя запросами на весь диапазон, классификация выполняется в памяти.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(domain.FacilityLocation())

	// 1. Валидация и значения по умолчанию
	from, days, err := normalizeRequest(req, now)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}
	to := from.AddDate(0, 0, days-1)

	uc.logger.Info("GetAvailability: from=%s, days=%d", from.Format(domain.DateFormat), days)

	// 2. Часы работы
	hours, err := uc.openingHoursRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list opening hours: %v", err)
		return nil, fmt.Errorf("%w: failed to list opening hours: %v", ErrInternal, err)
	}

	// 3. Активные бронирования в диапазоне
	bookings, err := uc.bookingRepo.ListActiveInRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Блокировки в диапазоне
	blocked, err := uc.blockedSlotRepo.ListInRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked slots: %v", ErrInternal, err)
	}

	// 5. Классификация слотов
	result, err := availability.ResolveRange(availability.RangeInput{
		From:     from,
		Days:     days,
		Hours:    hours,
		Bookings: bookings,
		Blocked:  blocked,
		Now:      now,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve slots: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}

	return &Response{Days: result}, nil
}
