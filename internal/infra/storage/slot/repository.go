package slot

// Схема (для справки, применяется миграциями вне этого сервиса):
//
//	events       (id BIGSERIAL PK, host_id BIGINT, title TEXT, event_date DATE,
//	              start_time TIME, end_time TIME, slot_duration_minutes INT,
//	              status TEXT, created_at, updated_at)
//	time_slots   (id BIGSERIAL PK, event_id BIGINT REFERENCES events,
//	              start_time TIME, end_time TIME, status TEXT,
//	              created_at, updated_at)
//	slot_bookings(id BIGSERIAL PK, slot_id BIGINT UNIQUE REFERENCES time_slots,
//	              event_id BIGINT, dj_id BIGINT, partner_dj_id BIGINT NULL,
//	              created_at, updated_at)
//	b2b_requests (id BIGSERIAL PK, booking_id BIGINT REFERENCES slot_bookings,
//	              requester_id BIGINT, requestee_id BIGINT, initiated_by TEXT,
//	              status TEXT, created_at, updated_at)

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vlkhvnn/DJ-BookingService/internal/domain"
	"github.com/vlkhvnn/DJ-BookingService/pkg/dbmetrics"
	"github.com/vlkhvnn/DJ-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с временными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// слоты всегда читаются вместе со статусом события - проверка
// бронируемости требует обе колонки
var slotColumns = []string{
	"s.id",
	"s.event_id",
	"s.start_time",
	"s.end_time",
	"s.status",
	"e.status AS event_status",
	"s.created_at",
	"s.updated_at",
}

// GetByIDs получает слоты по списку ID в порядке, заданном вызывающим.
// Внутри транзакции строки слотов блокируются (FOR UPDATE OF s), чтобы два
// конкурентных bookSlots не прошли проверку доступности одновременно.
// Отсутствующие ID просто не попадают в результат - вызывающий сверяет длину.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots s").
		Join("events e ON e.id = s.event_id").
		Where(squirrel.Eq{"s.id": ids})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots, err := r.scanSlots(rows)
	if err != nil {
		return nil, err
	}

	// Восстанавливаем порядок входного списка
	byID := make(map[int64]*domain.TimeSlot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}

	ordered := make([]*domain.TimeSlot, 0, len(slots))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}

	return ordered, nil
}

// GetByEventID получает все слоты события, отсортированные по времени начала
func (r *Repository) GetByEventID(ctx context.Context, eventID int64) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots s").
		Join("events e ON e.id = s.event_id").
		Where(squirrel.Eq{"s.event_id": eventID}).
		OrderBy("s.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEventID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEventID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// MarkBooked переводит слот из available в booked.
// Compare-and-set: условие status='available' входит в сам UPDATE, поэтому из
// двух конкурентных попыток ровно одна затронет строку. Ноль затронутых
// строк означает, что слот уже занят - ErrSlotNotAvailable.
func (r *Repository) MarkBooked(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("status", domain.SlotStatusBooked).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.SlotStatusAvailable,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		var slot domain.TimeSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.EventID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Status,
			&slot.EventStatus,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %w", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}
