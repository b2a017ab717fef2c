package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/pkg/dbmetrics"
	"github.com/sung-woo-jang/living-craft-backend/pkg/pgerrors"
	"github.com/sung-woo-jang/living-craft-backend/pkg/psqlbuilder"
)

const (
	windowsTable  = "operating_windows"
	holidaysTable = "holidays"
)

// Repository хранилище глобального рабочего календаря: окна по видам выезда и глобальные выходные
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetGlobalWindow получает глобальное окно рабочего времени для вида выезда
func (r *Repository) GetGlobalWindow(ctx context.Context, purpose domain.PurposeType) (*domain.OperatingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"purpose_type",
		"available_weekdays",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"updated_at",
	).
		From(windowsTable).
		Where(squirrel.Eq{"purpose_type": string(purpose)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetGlobalWindow - build select query: %v", ErrBuildQuery, err)
	}

	var (
		window    domain.OperatingWindow
		weekdays  pq.StringArray
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.PurposeType,
		&weekdays,
		&window.StartTime,
		&window.EndTime,
		&window.SlotDurationMinutes,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetGlobalWindow - scan window: %v", ErrScanRow, err)
	}

	window.AvailableWeekdays, err = domain.ParseWeekdaySet(weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: GetGlobalWindow - weekdays: %v", ErrCorruptWindow, err)
	}
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}

// ListGlobalHolidays получает глобальные выходные в диапазоне дат (включительно)
func (r *Repository) ListGlobalHolidays(ctx context.Context, rng domain.DateRange) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildGlobalHolidaysQuery(rng).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGlobalHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGlobalHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		var (
			h         domain.Holiday
			reason    sql.NullString
			createdAt sql.NullTime
		)
		if err := rows.Scan(&h.ID, &h.Date, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListGlobalHolidays - scan row: %v", ErrScanRow, err)
		}
		h.Reason = reason.String
		h.CreatedAt = createdAt.Time
		holidays = append(holidays, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListGlobalHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// Даты передаются строкой, чтобы часовой пояс сессии не сдвинул день
func buildGlobalHolidaysQuery(rng domain.DateRange) squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "date", "reason", "created_at").
		From(holidaysTable).
		Where(squirrel.GtOrEq{"date": rng.From.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": rng.To.Format(domain.DateFormat)}).
		OrderBy("date ASC")
}

// CreateHoliday добавляет глобальный выходной
// На одну дату допускается не более одной записи
func (r *Repository) CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(holidaysTable).
		Columns("date", "reason").
		Values(holiday.Date.Format(domain.DateFormat), holiday.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&holiday.ID, &createdAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrDuplicateHoliday
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - execute insert: %v", ErrExecQuery, err)
	}

	holiday.CreatedAt = createdAt.Time
	return holiday, nil
}

// DeleteHoliday удаляет глобальный выходной на дату
func (r *Repository) DeleteHoliday(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(holidaysTable).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHolidayNotFound
	}

	return nil
}
