package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/availability"
	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	blockedSlotRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/blockedslot"
	openingHoursRepo "github.com/m04kA/SMC-PitchBooking/internal/infra/storage/openinghours"
	"github.com/m04kA/SMC-PitchBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

// Service сервис администратора для часов работы и блокировок слотов
type Service struct {
	openingHoursRepo OpeningHoursRepository
	blockedSlotRepo  BlockedSlotRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	openingHoursRepo OpeningHoursRepository,
	blockedSlotRepo BlockedSlotRepository,
	logger Logger,
) *Service {
	return &Service{
		openingHoursRepo: openingHoursRepo,
		blockedSlotRepo:  blockedSlotRepo,
		logger:           logger,
	}
}

// ListOpeningHours возвращает часы работы по всем дням недели.
// Отсутствующий день означает, что площадка в этот день закрыта.
func (s *Service) ListOpeningHours(ctx context.Context) (*models.OpeningHoursListResponse, error) {
	s.logger.Info("ListOpeningHours: fetching opening hours")

	hours, err := s.openingHoursRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListOpeningHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOpeningHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOpeningHoursList(hours), nil
}

// UpdateOpeningHours создает или заменяет часы работы дня недели
func (s *Service) UpdateOpeningHours(
	ctx context.Context,
	dayOfWeek int,
	req *models.UpdateOpeningHoursRequest,
) (*models.OpeningHoursResponse, error) {
	s.logger.Info("UpdateOpeningHours: day=%d, %s-%s, slot=%d min",
		dayOfWeek, req.OpenTime, req.CloseTime, req.SlotMinutes)

	// 1. Валидация входных данных
	if err := validateDayOfWeek(dayOfWeek); err != nil {
		s.logger.Warn("UpdateOpeningHours: validation failed: %v", err)
		return nil, err
	}
	if err := validateOpeningHours(req); err != nil {
		s.logger.Warn("UpdateOpeningHours: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохранение
	saved, err := s.openingHoursRepo.Upsert(ctx, req.ToDomainOpeningHours(dayOfWeek))
	if err != nil {
		s.logger.Error("UpdateOpeningHours: repository error for day=%d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: UpdateOpeningHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateOpeningHours: successfully saved opening hours for day=%d", dayOfWeek)
	return models.FromDomainOpeningHours(saved), nil
}

// CloseDay удаляет часы работы дня недели; в этот день слоты не генерируются
func (s *Service) CloseDay(ctx context.Context, dayOfWeek int) error {
	s.logger.Info("CloseDay: day=%d", dayOfWeek)

	if err := validateDayOfWeek(dayOfWeek); err != nil {
		s.logger.Warn("CloseDay: validation failed: %v", err)
		return err
	}

	if err := s.openingHoursRepo.Delete(ctx, dayOfWeek); err != nil {
		if errors.Is(err, openingHoursRepo.ErrOpeningHoursNotFound) {
			s.logger.Warn("CloseDay: day=%d has no opening hours", dayOfWeek)
			return ErrDayAlreadyClosed
		}
		s.logger.Error("CloseDay: repository error for day=%d: %v", dayOfWeek, err)
		return fmt.Errorf("%w: CloseDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CloseDay: day=%d is closed now", dayOfWeek)
	return nil
}

// ListBlockedSlots возвращает блокировки на дату
func (s *Service) ListBlockedSlots(ctx context.Context, date time.Time) (*models.BlockedSlotListResponse, error) {
	day := domain.CalendarDate(date)
	s.logger.Info("ListBlockedSlots: date=%s", day.Format(domain.DateFormat))

	slots, err := s.blockedSlotRepo.ListInRange(ctx, day, day)
	if err != nil {
		s.logger.Error("ListBlockedSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedSlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedSlotList(slots), nil
}

// BlockSlot блокирует слот. Если для дня заданы часы работы,
// время должно совпадать с началом одного из слотов сетки.
func (s *Service) BlockSlot(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("BlockSlot: date=%s, start=%s", req.Date.Format(domain.DateFormat), req.SlotStart)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	start, err := types.NewTimeStringFromString(req.SlotStart)
	if err != nil {
		s.logger.Warn("BlockSlot: invalid start %q: %v", req.SlotStart, err)
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidTime, err)
	}
	reason, err := normalizeReason(req.Reason)
	if err != nil {
		s.logger.Warn("BlockSlot: %v", err)
		return nil, err
	}
	date := domain.CalendarDate(req.Date)

	// 2. Проверка по сетке слотов
	if err := s.checkOnGrid(ctx, date, start); err != nil {
		return nil, err
	}

	// 3. Сохранение
	created, err := s.blockedSlotRepo.Create(ctx, &domain.BlockedSlot{
		BookingDate: date,
		SlotStart:   start,
		Reason:      reason,
	})
	if err != nil {
		if errors.Is(err, blockedSlotRepo.ErrAlreadyBlocked) {
			s.logger.Warn("BlockSlot: slot %s %s already blocked", date.Format(domain.DateFormat), start)
			return nil, ErrAlreadyBlocked
		}
		s.logger.Error("BlockSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: BlockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockSlot: successfully blocked slot id=%d", created.ID)
	return models.FromDomainBlockedSlot(created), nil
}

// UnblockSlot снимает блокировку слота
func (s *Service) UnblockSlot(ctx context.Context, date time.Time, slotStart string) error {
	s.logger.Info("UnblockSlot: date=%s, start=%s", date.Format(domain.DateFormat), slotStart)

	start, err := types.NewTimeStringFromString(slotStart)
	if err != nil {
		s.logger.Warn("UnblockSlot: invalid start %q: %v", slotStart, err)
		return fmt.Errorf("%w: start: %v", ErrInvalidTime, err)
	}

	if err := s.blockedSlotRepo.Delete(ctx, domain.CalendarDate(date), start); err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("UnblockSlot: slot %s %s is not blocked", date.Format(domain.DateFormat), start)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("UnblockSlot: repository error: %v", err)
		return fmt.Errorf("%w: UnblockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockSlot: successfully unblocked slot %s %s", date.Format(domain.DateFormat), start)
	return nil
}

func (s *Service) checkOnGrid(ctx context.Context, date time.Time, start types.TimeString) error {
	hours, err := s.openingHoursRepo.GetByDayOfWeek(ctx, domain.DayOfWeek(date))
	if err != nil {
		if errors.Is(err, openingHoursRepo.ErrOpeningHoursNotFound) {
			// день закрыт, блокировка не мешает и не проверяется
			return nil
		}
		s.logger.Error("BlockSlot: failed to get opening hours: %v", err)
		return fmt.Errorf("%w: failed to get opening hours: %v", ErrInternal, err)
	}

	slots, err := availability.GenerateSlots(hours.OpenTime, hours.CloseTime, hours.SlotMinutes)
	if err != nil {
		s.logger.Error("BlockSlot: broken opening hours for day=%d: %v", hours.DayOfWeek, err)
		return fmt.Errorf("%w: broken opening hours: %v", ErrInternal, err)
	}

	for _, slot := range slots {
		if slot.Start == start {
			return nil
		}
	}

	s.logger.Warn("BlockSlot: %s is not a slot start for day=%d", start, hours.DayOfWeek)
	return fmt.Errorf("%w: %s", ErrNotOnGrid, start)
}
