package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий политик отмены
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик отмены
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID получает действующую политику отмены бизнеса
// На бизнес действует не более одной политики; берём самую раннюю
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"free_before_minutes",
		"penalty_type",
		"penalty_amount",
		"created_at",
	).
		From("cancellation_policies").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.CancellationPolicy
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.BusinessID,
		&p.FreeBeforeMinutes,
		&p.PenaltyType,
		&p.PenaltyAmount,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan policy: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time

	return &p, nil
}
