package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PitchBooking/internal/availability"
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/booking"
	openingHoursRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/openinghours"
	"github.com/m04kA/SMC-PitchBooking/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	openingHoursRepo OpeningHoursRepository
	blockedSlotRepo  BlockedSlotRepository
	dispatcher       EventDispatcher
	metrics          Metrics
	share            ShareConfig
	timeProvider     TimeProvider
	newID            func() string
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	openingHoursRepo OpeningHoursRepository,
	blockedSlotRepo BlockedSlotRepository,
	dispatcher EventDispatcher,
	metrics Metrics,
	share ShareConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		openingHoursRepo: openingHoursRepo,
		blockedSlotRepo:  blockedSlotRepo,
		dispatcher:       dispatcher,
		metrics:          metrics,
		share:            share,
		timeProvider:     &RealTimeProvider{},
		newID:            uuid.NewString,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверки выполняются по порядку, первая неудачная прерывает запрос.
// Гонку за слот разрешает уникальный индекс хранилища, а не предварительные проверки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, slot=%s-%s",
		req.Date.Format(domain.DateFormat), req.SlotStart, req.SlotEnd)

	// 1. Валидация входных данных
	normalized, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, uc.reject(err)
	}
	req = normalized

	now := uc.timeProvider.Now().In(domain.FacilityLocation())

	// 2. Часы работы на день недели (отсутствие записи проверяется на шаге 5)
	hours, err := uc.openingHoursRepo.GetByDayOfWeek(ctx, domain.DayOfWeek(req.Date))
	if err != nil && !errors.Is(err, openingHoursRepo.ErrOpeningHoursNotFound) {
		uc.logger.Error("CreateBooking: failed to get opening hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get opening hours: %v", ErrInternal, err)
	}

	// 3. Горизонт бронирования
	if err := validateHorizon(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, uc.reject(err)
	}

	// 4. Слот не в прошлом
	if err := validateNotPast(slotStartInstant(req, hours), now); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, uc.reject(err)
	}

	// 5. Часы работы и сетка слотов
	if hours == nil {
		uc.logger.Warn("CreateBooking: no opening hours for day=%d", domain.DayOfWeek(req.Date))
		return nil, uc.reject(ErrNoOpeningHours)
	}

	slot, err := resolveSlot(hours, req)
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		}
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, uc.reject(err)
	}

	// 6. Блокировка администратором
	blocked, err := uc.blockedSlotRepo.Exists(ctx, req.Date, req.SlotStart)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check blocked slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked slot: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Warn("CreateBooking: slot %s %s is blocked", req.Date.Format(domain.DateFormat), req.SlotStart)
		return nil, uc.reject(ErrSlotBlocked)
	}

	// 7. Сохранение
	booking := &domain.Booking{
		ID:          uc.newID(),
		BookingDate: req.Date,
		SlotStart:   req.SlotStart,
		SlotEnd:     req.SlotEnd,
		Name:        req.Name,
		Phone:       req.Phone,
		Note:        req.Note,
		Status:      domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken", req.Date.Format(domain.DateFormat), req.SlotStart)
			uc.metrics.BookingOutcome(metrics.OutcomeConflict)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.BookingOutcome(metrics.OutcomeCreated)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	// 8. Уведомления (ошибки доставки не влияют на результат)
	uc.dispatcher.Dispatch(ctx, domain.EventBookingCreated, created)

	summary := buildSummary(uc.share, created)
	return &Response{
		Booking:     created,
		SummaryText: summary,
		ShareLink:   buildShareLink(summary),
		CalendarText: buildCalendar(uc.share, created, summary,
			domain.AtOffset(created.BookingDate, slot.StartOffset),
			domain.AtOffset(created.BookingDate, slot.EndOffset)),
	}, nil
}

func (uc *UseCase) reject(err error) error {
	uc.metrics.BookingOutcome(metrics.OutcomeRejected)
	return err
}

// slotStartInstant момент начала слота. Для ночного окна время после полуночи
// относится к следующим календарным суткам.
func slotStartInstant(req *Request, hours *domain.OpeningHours) time.Time {
	offset := req.SlotStart.Offset()
	if hours != nil {
		if window, err := availability.NewWindow(hours.OpenTime, hours.CloseTime); err == nil {
			offset = window.OffsetOf(req.SlotStart)
		}
	}
	return domain.AtOffset(req.Date, offset)
}
