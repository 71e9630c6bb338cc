package b2b

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	"github.com/vlkhvnn/DJ-BookingService/pkg/dbmetrics"
	"github.com/vlkhvnn/DJ-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с B2B запросами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория B2B запросов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var requestColumns = []string{
	"id",
	"booking_id",
	"requester_id",
	"requestee_id",
	"initiated_by",
	"status",
	"created_at",
	"updated_at",
}

// Create создает новый B2B запрос в статусе pending
func (r *Repository) Create(ctx context.Context, req *domain.B2BRequest) (*domain.B2BRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("b2b_requests").
		Columns(
			"booking_id",
			"requester_id",
			"requestee_id",
			"initiated_by",
			"status",
		).
		Values(
			req.BookingID,
			req.RequesterID,
			req.RequesteeID,
			req.InitiatedBy,
			req.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID получает B2B запрос по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурентные
// accept/decline/leave по одному запросу выполнялись по очереди.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.B2BRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("b2b_requests").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	return r.scanRequest(executor.QueryRowContext(ctx, query, args...))
}

// GetActiveByBookingID получает активный (pending или accepted) запрос для
// бронирования. Активный запрос не больше одного - это инвариант, который
// create_b2b_request обеспечивает, вызывая этот метод внутри транзакции.
// Возвращает ErrRequestNotFound, если активного запроса нет.
func (r *Repository) GetActiveByBookingID(ctx context.Context, bookingID int64) (*domain.B2BRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveB2BStatuses))
	for i, s := range domain.ActiveB2BStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("b2b_requests").
		Where(squirrel.Eq{
			"booking_id": bookingID,
			"status":     activeStatuses,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByBookingID - build select query: %w", ErrBuildQuery, err)
	}

	return r.scanRequest(executor.QueryRowContext(ctx, query, args...))
}

// UpdateStatus переводит запрос из статуса from в статус to.
// Условие status=from входит в UPDATE: если статус уже изменила другая
// транзакция, строка не затрагивается и возвращается ErrStatusConflict.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.B2BStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("b2b_requests").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": from,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// scanRequest сканирует одну строку результата в B2B запрос
func (r *Repository) scanRequest(row *sql.Row) (*domain.B2BRequest, error) {
	var req domain.B2BRequest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.BookingID,
		&req.RequesterID,
		&req.RequesteeID,
		&req.InitiatedBy,
		&req.Status,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanRequest - scan row: %w", ErrScanRow, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
