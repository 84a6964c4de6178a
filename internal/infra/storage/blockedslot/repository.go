package blockedslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

const (
	table           = "blocked_slots"
	uniqueViolation = "23505"
)

var columns = []string{"id", "booking_date", "slot_start", "reason", "created_at"}

// Repository репозиторий заблокированных администратором слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create блокирует слот
func (r *Repository) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns("booking_date", "slot_start", "reason").
		Values(slot.BookingDate.Format(domain.DateFormat), slot.SlotStart, slot.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// Exists проверяет, заблокирован ли слот
func (r *Repository) Exists(ctx context.Context, date time.Time, start types.TimeString) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat), "slot_start": start}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListInRange возвращает блокировки в диапазоне дат [from, to]
func (r *Repository) ListInRange(ctx context.Context, from, to time.Time) ([]*domain.BlockedSlot, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"booking_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"booking_date": to.Format(domain.DateFormat)}).
		OrderBy("booking_date ASC", "slot_start ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var (
			slot   domain.BlockedSlot
			date   time.Time
			reason sql.NullString
		)
		if err := rows.Scan(&slot.ID, &date, &slot.SlotStart, &reason, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan row: %v", ErrScanRow, err)
		}
		slot.BookingDate = domain.CalendarDate(date)
		if reason.Valid {
			slot.Reason = &reason.String
		}
		result = append(result, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete снимает блокировку слота
func (r *Repository) Delete(ctx context.Context, date time.Time, start types.TimeString) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat), "slot_start": start}).
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
		return ErrBlockedSlotNotFound
	}

	return nil
}
