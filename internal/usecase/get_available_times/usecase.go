package get_available_times

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/availability"
	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule"
)

const queryName = "available_times"

// UseCase use case получения слотов на одну дату
type UseCase struct {
	resolver        ScheduleResolver
	calendarRepo    CalendarRepository
	overrideRepo    OverrideRepository
	reservationRepo ReservationRepository
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	resolver ScheduleResolver,
	calendarRepo CalendarRepository,
	overrideRepo OverrideRepository,
	reservationRepo ReservationRepository,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		resolver:        resolver,
		calendarRepo:    calendarRepo,
		overrideRepo:    overrideRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: service=%d, purpose=%s, date=%s",
		req.ServiceID, req.PurposeType, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	purpose, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		uc.metrics.RecordAvailabilityQuery(queryName, req.PurposeType, "invalid_input")
		return nil, err
	}

	// 2. Текущее время и календарная дата в часовом поясе расписания
	now := uc.timeProvider.Now()
	date := availability.AsDate(req.Date, now.Location())

	// 3. Итоговая конфигурация для (услуга, вид выезда)
	cfg, err := uc.resolver.Resolve(ctx, req.ServiceID, purpose)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "invalid_input")
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if errors.Is(err, schedule.ErrInvalidConfiguration) {
			uc.logger.Error("GetAvailableTimes: stored schedule is corrupt for service=%d, purpose=%s: %v",
				req.ServiceID, purpose, err)
			uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "invalid_config")
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		uc.logger.Error("GetAvailableTimes: failed to resolve schedule: %v", err)
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "error")
		return nil, fmt.Errorf("%w: failed to resolve schedule: %w", ErrInternal, err)
	}

	if err := availability.CheckConfiguration(cfg); err != nil {
		uc.logger.Error("GetAvailableTimes: broken configuration for service=%d, purpose=%s: %v",
			req.ServiceID, purpose, err)
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "invalid_config")
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	// 4. Выходные на дату
	holidays, err := uc.loadHolidays(ctx, req.ServiceID, date)
	if err != nil {
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "error")
		return nil, err
	}

	resp := &Response{
		Date:         date,
		ServiceID:    req.ServiceID,
		PurposeType:  purpose,
		WeekdayLabel: domain.WeekdayCode(date.Weekday()),
		Slots:        []Slot{},
	}

	// 5. Цепочка исключений даты
	decision := availability.EvaluateDate(date, now, cfg, holidays)
	resp.State = decision.State
	if decision.Excluded() {
		uc.logger.Info("GetAvailableTimes: date %s excluded for service=%d: %s",
			date.Format(domain.DateFormat), req.ServiceID, decision.Reason)
		resp.Reason = decision.Reason
		uc.metrics.RecordDateExclusion(string(purpose), string(decision.State))
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "excluded")
		return resp, nil
	}
	resp.IsOperatingDay = true

	// 6. Генерируем временные слоты
	labels, err := availability.GenerateSlots(cfg.StartTime, cfg.EndTime, cfg.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to generate slots: %v", err)
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "invalid_config")
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	// 7. Занятые времена на эту дату для того же вида выезда
	reserved, err := uc.reservationRepo.ListReservedTimes(ctx, req.ServiceID, purpose, date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get reservations: %v", err)
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "error")
		return nil, fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
	}

	// 8. Помечаем занятые и прошедшие слоты
	marked, err := availability.MarkSlots(date, now, labels, reserved)
	if err != nil {
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "invalid_config")
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	resp.Slots = make([]Slot, len(marked))
	for i, s := range marked {
		resp.Slots[i] = Slot{
			Time:        s.Time,
			IsTaken:     s.IsTaken,
			IsAvailable: s.IsAvailable,
			State:       s.State,
		}
		uc.metrics.RecordSlotState(string(purpose), string(s.State))
	}
	resp.DefaultTime = availability.DefaultTime(marked)

	uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "operating")
	uc.logger.Info("GetAvailableTimes: generated %d slots (%d reserved) for service=%d, purpose=%s, date=%s",
		len(resp.Slots), len(reserved), req.ServiceID, purpose, date.Format(domain.DateFormat))

	return resp, nil
}

func (uc *UseCase) loadHolidays(ctx context.Context, serviceID int64, date time.Time) (*availability.HolidayCalendar, error) {
	global, err := uc.calendarRepo.ListGlobalHolidays(ctx, domain.DateRange{From: date, To: date})
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get global holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get global holidays: %w", ErrInternal, err)
	}

	service, err := uc.overrideRepo.ListServiceHolidays(ctx, serviceID)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get service holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get service holidays: %w", ErrInternal, err)
	}

	return availability.NewHolidayCalendar(global, service), nil
}
