package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PitchBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PitchBooking/pkg/metrics"
)

// Service сервис администратора для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	dispatcher  EventDispatcher
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	dispatcher EventDispatcher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		dispatcher:  dispatcher,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по дате, телефону и имени.
// Результат упорядочен по дате и началу слота, отмененные включены.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter := req.ToDomainFilter()

	logMsg := "List: fetching bookings"
	if filter.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", filter.Date.Format(domain.DateFormat))
	}
	if filter.Phone != nil {
		logMsg += fmt.Sprintf(", phone=%s", *filter.Phone)
	}
	if filter.Name != nil {
		logMsg += fmt.Sprintf(", name=%s", *filter.Name)
	}
	s.logger.Info(logMsg)

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update меняет статус и/или контактные данные бронирования.
// Разрешены только переходы pending -> confirmed и pending -> canceled;
// установка текущего статуса ничего не меняет.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	// 1. Валидация входных данных
	status, details, err := parseUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for booking id=%s: %v", id, err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем переход до любых изменений
	changeStatus := status != nil && *status != booking.Status
	if changeStatus && !booking.CanTransitionTo(*status) {
		s.logger.Warn("Update: transition %s -> %s is not allowed for booking id=%s", booking.Status, *status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, *status)
	}

	// 4. Статус: условный переход выполняется раньше изменения контактных данных,
	// проигравший гонку запрос ничего не записывает
	applied := false
	if changeStatus {
		booking, applied, err = s.transition(ctx, id, *status)
		if err != nil {
			return nil, err
		}
	}

	// 5. Контактные данные
	if !details.IsEmpty() {
		updated, err := s.bookingRepo.UpdateDetails(ctx, id, details)
		if err != nil {
			if applied {
				s.notifyStatus(ctx, booking)
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Update: failed to update details of booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateDetails - repository error: %v", ErrInternal, err)
		}
		booking = updated
		s.logger.Info("Update: details of booking id=%s updated", id)
	}

	// 6. События о смене статуса
	if applied {
		s.notifyStatus(ctx, booking)
	}

	return models.FromDomainBooking(booking), nil
}

// transition переводит бронирование из pending в to.
// applied == false, если тот же переход уже выполнил параллельный запрос.
func (s *Service) transition(ctx context.Context, id string, to domain.BookingStatus) (*domain.Booking, bool, error) {
	updated, err := s.bookingRepo.TransitionStatus(ctx, id, []domain.BookingStatus{domain.StatusPending}, to)
	if err != nil {
		if !errors.Is(err, bookingRepo.ErrStatusConflict) {
			s.logger.Error("Update: failed to change status of booking id=%s: %v", id, err)
			return nil, false, fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrInternal, err)
		}

		// статус изменился между чтением и обновлением
		current, getErr := s.get(ctx, "Update", id)
		if getErr != nil {
			return nil, false, getErr
		}
		if current.Status == to {
			return current, false, nil
		}
		s.logger.Warn("Update: booking id=%s moved to %s concurrently", id, current.Status)
		return nil, false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
	}

	s.logger.Info("Update: booking id=%s is now %s", id, to)
	return updated, true, nil
}

func (s *Service) notifyStatus(ctx context.Context, booking *domain.Booking) {
	switch booking.Status {
	case domain.StatusConfirmed:
		s.dispatcher.Dispatch(ctx, domain.EventBookingConfirmed, booking)
	case domain.StatusCanceled:
		s.metrics.BookingOutcome(metrics.OutcomeCanceled)
		s.dispatcher.Dispatch(ctx, domain.EventBookingCanceled, booking)
	}
}

func (s *Service) get(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
