package override

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
	"github.com/sung-woo-jang/living-craft-backend/pkg/ptr"
	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

const (
	schedulesTable       = "service_schedules"
	purposesTable        = "service_schedule_purposes"
	serviceHolidaysTable = "service_holidays"
)

// Repository хранилище переопределений расписания услуг и выходных услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переопределений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOverride получает настройки расписания услуги вместе с переопределением для вида выезда
// Если запись услуги есть, а переопределения для вида выезда нет, Schedules будет пустым
func (r *Repository) GetOverride(ctx context.Context, serviceID int64, purpose domain.PurposeType) (*domain.ServiceScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildOverrideQuery(serviceID, purpose).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	var (
		horizon   sql.NullInt64
		updatedAt sql.NullTime
		row       purposeRow
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&horizon,
		&updatedAt,
		&row.mode,
		&row.customWeekdays,
		&row.startTime,
		&row.endTime,
		&row.slotDuration,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - scan override: %v", ErrScanRow, err)
	}

	override, err := mapOverride(serviceID, purpose, horizon, updatedAt, row)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - purpose %s: %v", ErrCorruptOverride, purpose, err)
	}

	return override, nil
}

func buildOverrideQuery(serviceID int64, purpose domain.PurposeType) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"s.booking_horizon_months",
		"s.updated_at",
		"p.mode",
		"p.custom_weekdays",
		"p.start_time",
		"p.end_time",
		"p.slot_duration_minutes",
	).
		From(schedulesTable+" s").
		LeftJoin(purposesTable+" p ON p.service_id = s.service_id AND p.purpose_type = ?", string(purpose)).
		Where(squirrel.Eq{"s.service_id": serviceID})
}

// mapOverride собирает переопределение из строки LEFT JOIN
func mapOverride(serviceID int64, purpose domain.PurposeType, horizon sql.NullInt64, updatedAt sql.NullTime, row purposeRow) (*domain.ServiceScheduleOverride, error) {
	override := &domain.ServiceScheduleOverride{
		ServiceID:            serviceID,
		BookingHorizonMonths: int(horizon.Int64),
		Schedules:            make(map[domain.PurposeType]domain.PurposeSchedule, 1),
		UpdatedAt:            updatedAt.Time,
	}

	// LEFT JOIN без совпадения: для этого вида выезда переопределения нет
	if row.mode.Valid {
		schedule, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		override.Schedules[purpose] = schedule
	}

	return override, nil
}

// Upsert создает или заменяет настройки расписания услуги
// Виды выезда, отсутствующие в override.Schedules, сбрасываются в GLOBAL (строка удаляется).
// Вызывать внутри транзакции (txmanager), чтобы запись услуги и видов выезда менялась атомарно.
func (r *Repository) Upsert(ctx context.Context, override *domain.ServiceScheduleOverride) (*domain.ServiceScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(schedulesTable).
		Columns("service_id", "booking_horizon_months").
		Values(override.ServiceID, override.BookingHorizonMonths).
		Suffix("ON CONFLICT (service_id) DO UPDATE SET booking_horizon_months = EXCLUDED.booking_horizon_months, updated_at = NOW() RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	override.UpdatedAt = updatedAt.Time

	for _, purpose := range domain.PurposeTypes {
		schedule, ok := override.Schedule(purpose)
		if !ok {
			if err := r.deletePurpose(ctx, executor, override.ServiceID, purpose); err != nil {
				return nil, err
			}
			continue
		}
		if err := r.upsertPurpose(ctx, executor, override.ServiceID, purpose, schedule); err != nil {
			return nil, err
		}
	}

	return override, nil
}

func (r *Repository) upsertPurpose(ctx context.Context, executor DBExecutor, serviceID int64, purpose domain.PurposeType, s domain.PurposeSchedule) error {
	var customWeekdays interface{}
	if s.CustomWeekdays != nil {
		customWeekdays = pq.Array(s.CustomWeekdays.Codes())
	}

	var startTime, endTime interface{}
	if s.StartTime != nil {
		startTime = s.StartTime.String()
	}
	if s.EndTime != nil {
		endTime = s.EndTime.String()
	}

	query, args, err := psqlbuilder.Insert(purposesTable).
		Columns("service_id", "purpose_type", "mode", "custom_weekdays", "start_time", "end_time", "slot_duration_minutes").
		Values(serviceID, string(purpose), string(s.Mode), customWeekdays, startTime, endTime, s.SlotDurationMinutes).
		Suffix(`ON CONFLICT (service_id, purpose_type) DO UPDATE SET
			mode = EXCLUDED.mode,
			custom_weekdays = EXCLUDED.custom_weekdays,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: upsertPurpose - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertPurpose - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) deletePurpose(ctx context.Context, executor DBExecutor, serviceID int64, purpose domain.PurposeType) error {
	query, args, err := psqlbuilder.Delete(purposesTable).
		Where(squirrel.Eq{"service_id": serviceID, "purpose_type": string(purpose)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: deletePurpose - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: deletePurpose - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// ListServiceHolidays получает все выходные услуги по возрастанию даты
func (r *Repository) ListServiceHolidays(ctx context.Context, serviceID int64) ([]*domain.ServiceHoliday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "service_id", "date", "reason", "created_at").
		From(serviceHolidaysTable).
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServiceHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.ServiceHoliday, 0)
	for rows.Next() {
		var (
			h         domain.ServiceHoliday
			reason    sql.NullString
			createdAt sql.NullTime
		)
		if err := rows.Scan(&h.ID, &h.ServiceID, &h.Date, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListServiceHolidays - scan row: %v", ErrScanRow, err)
		}
		h.Reason = reason.String
		h.CreatedAt = createdAt.Time
		holidays = append(holidays, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServiceHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// CreateServiceHoliday добавляет выходной услуги
func (r *Repository) CreateServiceHoliday(ctx context.Context, holiday *domain.ServiceHoliday) (*domain.ServiceHoliday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(serviceHolidaysTable).
		Columns("service_id", "date", "reason").
		Values(holiday.ServiceID, holiday.Date.Format(domain.DateFormat), holiday.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateServiceHoliday - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&holiday.ID, &createdAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrDuplicateHoliday
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateServiceHoliday - execute insert: %v", ErrExecQuery, err)
	}

	holiday.CreatedAt = createdAt.Time
	return holiday, nil
}

// DeleteServiceHoliday удаляет выходной услуги на дату
func (r *Repository) DeleteServiceHoliday(ctx context.Context, serviceID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(serviceHolidaysTable).
		Where(squirrel.Eq{"service_id": serviceID, "date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteServiceHoliday - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteServiceHoliday - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteServiceHoliday - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHolidayNotFound
	}

	return nil
}

// purposeRow nullable колонки строки service_schedule_purposes после LEFT JOIN
type purposeRow struct {
	mode           sql.NullString
	customWeekdays pq.StringArray
	startTime      sql.NullString
	endTime        sql.NullString
	slotDuration   sql.NullInt64
}

func (p purposeRow) toDomain() (domain.PurposeSchedule, error) {
	mode, err := domain.ParseScheduleMode(p.mode.String)
	if err != nil {
		return domain.PurposeSchedule{}, err
	}

	schedule := domain.PurposeSchedule{Mode: mode}

	// NULL и пустой массив различаются: NULL означает "не задано"
	if p.customWeekdays != nil {
		set, err := domain.ParseWeekdaySet(p.customWeekdays)
		if err != nil {
			return domain.PurposeSchedule{}, err
		}
		schedule.CustomWeekdays = &set
	}

	if p.startTime.Valid {
		t, err := types.NewTimeStringFromString(p.startTime.String)
		if err != nil {
			return domain.PurposeSchedule{}, err
		}
		schedule.StartTime = &t
	}

	if p.endTime.Valid {
		t, err := types.NewTimeStringFromString(p.endTime.String)
		if err != nil {
			return domain.PurposeSchedule{}, err
		}
		schedule.EndTime = &t
	}

	if p.slotDuration.Valid {
		schedule.SlotDurationMinutes = ptr.Ptr(int(p.slotDuration.Int64))
	}

	return schedule, nil
}
