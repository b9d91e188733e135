package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const (
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
)

var reservationColumns = []string{
	"id",
	"resource_id",
	"customer_name",
	"customer_email",
	"party_size",
	"start_time",
	"end_time",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
}

// Repository репозиторий бронирований (журнал броней)
// Единственный владелец записей Reservation, все времена в UTC
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование со статусом CONFIRMED
// Если в контексте передана активная транзакция, использует её.
//
// Непересечение подтверждённых броней гарантирует exclusion constraint
// reservations_no_overlap: параллельная вставка пересекающегося интервала
// завершается ErrOverlapConflict, даже если предварительная проверка
// пересечений обеих гонящихся записей прошла успешно.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"resource_id",
			"customer_name",
			"customer_email",
			"party_size",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			reservation.ResourceID,
			reservation.CustomerName,
			reservation.CustomerEmail,
			reservation.PartySize,
			reservation.StartTime.UTC(),
			reservation.EndTime.UTC(),
			reservation.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
	)

	if err != nil {
		if mapped := mapPQError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// FindOverlapping находит подтверждённые бронирования ресурса,
// пересекающиеся с полуоткрытым интервалом [start, end)
func (r *Repository) FindOverlapping(ctx context.Context, resourceID int64, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"start_time": end.UTC()}).
		Where(squirrel.Gt{"end_time": start.UTC()}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// FindForDay получает бронирования ресурса, начинающиеся в пределах дня
// [dayStart, dayEnd), упорядоченные по времени начала
// По умолчанию только подтверждённые; includeCancelled=true добавляет
// отменённые строки (для аудита)
func (r *Repository) FindForDay(ctx context.Context, resourceID int64, dayStart, dayEnd time.Time, includeCancelled bool) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.GtOrEq{"start_time": dayStart.UTC()}).
		Where(squirrel.Lt{"start_time": dayEnd.UTC()}).
		OrderBy("start_time ASC")

	if !includeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusConfirmed})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Cancel переводит бронирование в терминальный статус отмены с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// IsConflict сообщает, вызвана ли ошибка конкурентным пересечением броней:
// exclusion constraint на вставке или serialization failure на коммите
// сериализуемой транзакции. Ошибка коммита приходит обёрнутой из txmanager,
// поэтому дополнительно проверяем код pq по цепочке
func IsConflict(err error) bool {
	if errors.Is(err, ErrOverlapConflict) || errors.Is(err, ErrSerializationFailure) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgExclusionViolation || code == pgSerializationFailure
	}
	return false
}

// mapPQError переводит коды ошибок PostgreSQL в ошибки репозитория
// 23P01 - exclusion_violation (пересечение броней), 40001 - serialization_failure
func mapPQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}
	switch string(pqErr.Code) {
	case pgExclusionViolation:
		return ErrOverlapConflict
	case pgSerializationFailure:
		return ErrSerializationFailure
	default:
		return nil
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.ResourceID,
		&reservation.CustomerName,
		&reservation.CustomerEmail,
		&reservation.PartySize,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.Status,
		&reservation.CancellationReason,
		&reservation.CancelledAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.StartTime = reservation.StartTime.UTC()
	reservation.EndTime = reservation.EndTime.UTC()
	reservation.CreatedAt = createdAt.Time

	return &reservation, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
