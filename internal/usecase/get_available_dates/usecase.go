package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/availability"
	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule"
)

const queryName = "available_dates"

// UseCase use case получения недоступных дат месяца
type UseCase struct {
	resolver     ScheduleResolver
	calendarRepo CalendarRepository
	overrideRepo OverrideRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver ScheduleResolver,
	calendarRepo CalendarRepository,
	overrideRepo OverrideRepository,
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
		resolver:     resolver,
		calendarRepo: calendarRepo,
		overrideRepo: overrideRepo,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case
// Любая ошибка прерывает весь ответ: частично заполненный список исключений не возвращается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: service=%d, purpose=%s, month=%04d-%02d",
		req.ServiceID, req.PurposeType, req.Year, req.Month)

	purpose, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		uc.metrics.RecordAvailabilityQuery(queryName, req.PurposeType, "invalid_input")
		return nil, err
	}

	now := uc.timeProvider.Now()
	loc := now.Location()
	month := time.Month(req.Month)

	// Конфигурация разрешается один раз на весь месяц
	cfg, err := uc.resolver.Resolve(ctx, req.ServiceID, purpose)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "invalid_input")
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if errors.Is(err, schedule.ErrInvalidConfiguration) {
			uc.logger.Error("GetAvailableDates: stored schedule is corrupt for service=%d, purpose=%s: %v",
				req.ServiceID, purpose, err)
			uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "invalid_config")
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		uc.logger.Error("GetAvailableDates: failed to resolve schedule: %v", err)
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "error")
		return nil, fmt.Errorf("%w: failed to resolve schedule: %w", ErrInternal, err)
	}

	if err := availability.CheckConfiguration(cfg); err != nil {
		uc.logger.Error("GetAvailableDates: broken configuration for service=%d, purpose=%s: %v",
			req.ServiceID, purpose, err)
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "invalid_config")
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	first, last := availability.MonthRange(req.Year, month, loc)

	global, err := uc.calendarRepo.ListGlobalHolidays(ctx, domain.DateRange{From: first, To: last})
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get global holidays: %v", err)
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "error")
		return nil, fmt.Errorf("%w: failed to get global holidays: %w", ErrInternal, err)
	}

	service, err := uc.overrideRepo.ListServiceHolidays(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get service holidays: %v", err)
		uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "error")
		return nil, fmt.Errorf("%w: failed to get service holidays: %w", ErrInternal, err)
	}

	holidays := availability.NewHolidayCalendar(global, service)

	resp := &Response{
		ServiceID:        req.ServiceID,
		PurposeType:      purpose,
		Year:             req.Year,
		Month:            req.Month,
		MaxBookableDate:  availability.MaxBookableDate(now, cfg.BookingHorizonMonths),
		UnavailableDates: []UnavailableDate{},
	}

	for _, date := range availability.MonthDates(req.Year, month, loc) {
		decision := availability.EvaluateDate(date, now, cfg, holidays)
		if !decision.Excluded() {
			continue
		}
		resp.UnavailableDates = append(resp.UnavailableDates, UnavailableDate{
			Date:   date,
			Reason: decision.Reason,
			State:  decision.State,
		})
		uc.metrics.RecordDateExclusion(string(purpose), string(decision.State))
	}

	uc.metrics.RecordAvailabilityQuery(queryName, string(purpose), "ok")
	uc.logger.Info("GetAvailableDates: %d of %d dates unavailable for service=%d, purpose=%s",
		len(resp.UnavailableDates), last.Day(), req.ServiceID, purpose)

	return resp, nil
}
