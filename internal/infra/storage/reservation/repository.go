package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/pkg/dbmetrics"
	"github.com/sung-woo-jang/living-craft-backend/pkg/psqlbuilder"
	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

const reservationsTable = "reservations"

// Repository читающая сторона журнала бронирований
// Запись броней и проверка конфликтов (уникальный индекс) живут в сервисе бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListReservedTimes возвращает занятые времена активных броней услуги на дату для вида выезда
// Снимок на момент чтения: не блокирует и не резервирует слоты
func (r *Repository) ListReservedTimes(ctx context.Context, serviceID int64, purpose domain.PurposeType, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildReservedTimesQuery(serviceID, purpose, date).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListReservedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReservedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ListReservedTimes - scan row: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListReservedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

func buildReservedTimesQuery(serviceID int64, purpose domain.PurposeType, date time.Time) squirrel.SelectBuilder {
	inactive := make([]string, len(domain.InactiveReservationStatuses))
	for i, s := range domain.InactiveReservationStatuses {
		inactive[i] = string(s)
	}

	return psqlbuilder.Select("confirmed_time").
		From(reservationsTable).
		Where(squirrel.Eq{
			"service_id":     serviceID,
			"purpose_type":   string(purpose),
			"confirmed_date": date.Format(domain.DateFormat),
		}).
		Where(squirrel.NotEq{"status": inactive}).
		Where(squirrel.NotEq{"confirmed_time": nil}).
		OrderBy("confirmed_time ASC")
}
