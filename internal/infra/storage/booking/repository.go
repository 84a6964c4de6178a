package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
	"github.com/m04kA/SMC-PitchBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-PitchBooking/pkg/types"
)

const (
	table = "bookings"

	// uniqueViolation код ошибки PostgreSQL 23505
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"booking_date",
	"slot_start",
	"slot_end",
	"name",
	"phone",
	"note",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Частичный уникальный индекс (booking_date, slot_start) WHERE status <> 'canceled'
// единственный арбитр двойного бронирования: его нарушение возвращает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"booking_date",
			"slot_start",
			"slot_end",
			"name",
			"phone",
			"note",
			"status",
		).
		Values(
			booking.ID,
			dateParam(booking.BookingDate),
			booking.SlotStart,
			booking.SlotEnd,
			booking.Name,
			booking.Phone,
			booking.Note,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s %s", ErrSlotTaken, dateParam(booking.BookingDate), booking.SlotStart)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID. Строка, не являющаяся UUID, дает ErrBookingNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBookingNotFound
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// FindBySlot находит бронирование слота: активное, если есть, иначе последнее отмененное
func (r *Repository) FindBySlot(ctx context.Context, date time.Time, start types.TimeString) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"booking_date": dateParam(date), "slot_start": start}).
		OrderBy("(status <> 'canceled') DESC", "created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindBySlot - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindBySlot - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает бронирования по фильтру администратора, упорядоченные по дате и началу слота.
// Телефон ищется по подстроке, имя по подстроке без учета регистра.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("booking_date ASC", "slot_start ASC", "created_at ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": dateParam(*filter.Date)})
	}
	if filter.Phone != nil && *filter.Phone != "" {
		selectBuilder = selectBuilder.Where(squirrel.Like{"phone": "%" + escapeLike(*filter.Phone) + "%"})
	}
	if filter.Name != nil && *filter.Name != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"name": "%" + escapeLike(*filter.Name) + "%"})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListActiveInRange возвращает активные бронирования в диапазоне дат [from, to]
func (r *Repository) ListActiveInRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	active := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		active[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"booking_date": dateParam(from)}).
		Where(squirrel.LtOrEq{"booking_date": dateParam(to)}).
		Where(squirrel.Eq{"status": active}).
		OrderBy("booking_date ASC", "slot_start ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// TransitionStatus переводит бронирование в статус to, только если текущий статус входит в from.
// Если строка не в ожидаемом статусе (или отсутствует), возвращает ErrStatusConflict.
func (r *Repository) TransitionStatus(
	ctx context.Context,
	id string,
	from []domain.BookingStatus,
	to domain.BookingStatus,
) (*domain.Booking, error) {
	expected := make([]string, len(from))
	for i, s := range from {
		expected[i] = string(s)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": expected}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: TransitionStatus - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// UpdateDetails обновляет контактные данные (nil поля не меняются)
func (r *Repository) UpdateDetails(ctx context.Context, id string, details domain.BookingDetails) (*domain.Booking, error) {
	updateBuilder := psqlbuilder.Update(table).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if details.Name != nil {
		updateBuilder = updateBuilder.Set("name", *details.Name)
	}
	if details.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *details.Phone)
	}
	if details.Note != nil {
		// пустая заметка очищает поле
		var note interface{}
		if *details.Note != "" {
			note = *details.Note
		}
		updateBuilder = updateBuilder.Set("note", note)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDetails - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		bookingDate time.Time
		note        sql.NullString
	)

	err := row.Scan(
		&booking.ID,
		&bookingDate,
		&booking.SlotStart,
		&booking.SlotEnd,
		&booking.Name,
		&booking.Phone,
		&note,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = domain.CalendarDate(bookingDate)
	if note.Valid {
		booking.Note = &note.String
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// dateParam передает дату как "YYYY-MM-DD", чтобы SQL DATE не зависел от часового пояса сессии
func dateParam(date time.Time) string {
	return date.Format(domain.DateFormat)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
