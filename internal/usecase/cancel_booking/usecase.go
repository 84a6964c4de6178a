package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PitchBooking/pkg/metrics"
)

// UseCase use case для отмены бронирования самим пользователем
type UseCase struct {
	bookingRepo BookingRepository
	dispatcher  EventDispatcher
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, dispatcher EventDispatcher, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		dispatcher:  dispatcher,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет отмену. Повторная отмена возвращает AlreadyCanceled без ошибки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Поиск бронирования
	booking, err := uc.find(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Уже отменено
	if booking.IsCanceled() {
		uc.logger.Info("CancelBooking: booking id=%s is already canceled", booking.ID)
		return &Response{Booking: booking, AlreadyCanceled: true}, nil
	}

	// 4. Условный переход: из двух параллельных отмен выигрывает одна
	canceled, err := uc.bookingRepo.TransitionStatus(ctx, booking.ID, domain.ActiveStatuses, domain.StatusCanceled)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return uc.resolveConflict(ctx, booking.ID)
		}
		uc.logger.Error("CancelBooking: failed to cancel booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	uc.metrics.BookingOutcome(metrics.OutcomeCanceled)
	uc.logger.Info("CancelBooking: successfully canceled booking id=%s", canceled.ID)

	// 5. Уведомления
	uc.dispatcher.Dispatch(ctx, domain.EventBookingCanceled, canceled)

	return &Response{Booking: canceled}, nil
}

func (uc *UseCase) find(ctx context.Context, req *Request) (*domain.Booking, error) {
	var (
		booking *domain.Booking
		err     error
	)

	if id := strings.TrimSpace(req.BookingID); id != "" {
		uc.logger.Info("CancelBooking: id=%s", id)
		booking, err = uc.bookingRepo.GetByID(ctx, id)
	} else {
		date := domain.CalendarDate(req.Date)
		uc.logger.Info("CancelBooking: date=%s, slot=%s", date.Format(domain.DateFormat), req.SlotStart)
		booking, err = uc.bookingRepo.FindBySlot(ctx, date, req.SlotStart)
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking not found")
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return booking, nil
}

// resolveConflict перечитывает бронирование, статус которого изменился между чтением и обновлением
func (uc *UseCase) resolveConflict(ctx context.Context, id string) (*Response, error) {
	current, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to re-read booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to re-read booking: %v", ErrInternal, err)
	}

	if current.IsCanceled() {
		uc.logger.Info("CancelBooking: booking id=%s was canceled concurrently", id)
		return &Response{Booking: current, AlreadyCanceled: true}, nil
	}

	uc.logger.Error("CancelBooking: booking id=%s in unexpected status %s", id, current.Status)
	return nil, fmt.Errorf("%w: unexpected status %s", ErrInternal, current.Status)
}
