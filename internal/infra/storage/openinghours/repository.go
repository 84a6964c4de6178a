package openinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/psqlbuilder"
)

const table = "opening_hours"

var columns = []string{"day_of_week", "open_time", "close_time", "slot_minutes", "updated_at"}

// Repository репозиторий часов работы (одна запись на день недели)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDayOfWeek возвращает часы работы для дня недели (0 = воскресенье)
func (r *Repository) GetByDayOfWeek(ctx context.Context, dayOfWeek int) (*domain.OpeningHours, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayOfWeek - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.OpeningHours
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&hours.DayOfWeek,
		&hours.OpenTime,
		&hours.CloseTime,
		&hours.SlotMinutes,
		&hours.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOpeningHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayOfWeek - scan opening hours: %v", ErrScanRow, err)
	}

	return &hours, nil
}

// List возвращает все заданные дни недели по порядку
func (r *Repository) List(ctx context.Context) ([]*domain.OpeningHours, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.OpeningHours, 0, 7)
	for rows.Next() {
		var hours domain.OpeningHours
		if err := rows.Scan(
			&hours.DayOfWeek,
			&hours.OpenTime,
			&hours.CloseTime,
			&hours.SlotMinutes,
			&hours.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert создает или заменяет часы работы дня недели
func (r *Repository) Upsert(ctx context.Context, hours *domain.OpeningHours) (*domain.OpeningHours, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns("day_of_week", "open_time", "close_time", "slot_minutes").
		Values(hours.DayOfWeek, hours.OpenTime, hours.CloseTime, hours.SlotMinutes).
		Suffix(`ON CONFLICT (day_of_week) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_minutes = EXCLUDED.slot_minutes,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&hours.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return hours, nil
}

// Delete удаляет запись дня недели, после чего площадка в этот день закрыта
func (r *Repository) Delete(ctx context.Context, dayOfWeek int) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOpeningHoursNotFound
	}

	return nil
}
