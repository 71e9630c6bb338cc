package event

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

// Repository репозиторий для работы с событиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"host_id",
		"title",
		"event_date",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var event domain.Event
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&event.HostID,
		&event.Title,
		&event.EventDate,
		&event.StartTime,
		&event.EndTime,
		&event.SlotDurationMinutes,
		&event.Status,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %w", ErrScanRow, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}

// Publish переводит событие из draft в published.
// Условный UPDATE: обновляет только черновик. Возвращает true, если строка
// была обновлена, и false, если событие уже было опубликовано ранее
// (это штатный случай - публикация идемпотентна).
func (r *Repository) Publish(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("events").
		Set("status", domain.EventStatusPublished).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.EventStatusDraft,
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Publish - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Publish - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Publish - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}
