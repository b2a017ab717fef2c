package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	calendarRepo "github.com/sung-woo-jang/living-craft-backend/internal/infra/storage/calendar"
	overrideRepo "github.com/sung-woo-jang/living-craft-backend/internal/infra/storage/override"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule/models"
	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

// Service сервис итоговой конфигурации расписания услуг
type Service struct {
	calendarRepo CalendarRepository
	overrideRepo OverrideRepository
	txManager    TxManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	calendarRepo CalendarRepository,
	overrideRepo OverrideRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		overrideRepo: overrideRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Resolve возвращает итоговую конфигурацию для пары (услуга, вид выезда)
// Отсутствие глобального окна или переопределения не является ошибкой: применяются значения
// по умолчанию. Неразбираемые сохраненные данные - ErrInvalidConfiguration, прочие ошибки хранилищ - ErrInternal.
func (s *Service) Resolve(ctx context.Context, serviceID int64, purpose domain.PurposeType) (*domain.EffectiveConfiguration, error) {
	if !purpose.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrUnknownPurposeType)
	}

	window, err := s.calendarRepo.GetGlobalWindow(ctx, purpose)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCorruptWindow) {
			s.logger.Error("Resolve: corrupt global window purpose=%s: %v", purpose, err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		if !errors.Is(err, calendarRepo.ErrWindowNotFound) {
			s.logger.Error("Resolve: failed to get global window purpose=%s: %v", purpose, err)
			return nil, fmt.Errorf("%w: failed to get global window: %w", ErrInternal, err)
		}
		s.logger.Warn("Resolve: global window for purpose=%s not configured, using defaults", purpose)
		window = nil
	}

	override, err := s.overrideRepo.GetOverride(ctx, serviceID, purpose)
	if err != nil {
		if errors.Is(err, overrideRepo.ErrCorruptOverride) {
			s.logger.Error("Resolve: corrupt override service=%d purpose=%s: %v", serviceID, purpose, err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		if !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			s.logger.Error("Resolve: failed to get override service=%d purpose=%s: %v", serviceID, purpose, err)
			return nil, fmt.Errorf("%w: failed to get service override: %w", ErrInternal, err)
		}
		override = nil
	}

	return Merge(serviceID, purpose, window, override), nil
}

// GetSchedule возвращает итоговое расписание услуги для одного или обоих видов выезда
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	purposes := domain.PurposeTypes
	if req.PurposeType != "" {
		purpose, err := domain.ParsePurposeType(req.PurposeType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		purposes = []domain.PurposeType{purpose}
	}

	resp := &models.ScheduleResponse{
		ServiceID: req.ServiceID,
		Schedules: make([]models.EffectiveScheduleItem, 0, len(purposes)),
	}

	for _, purpose := range purposes {
		cfg, err := s.Resolve(ctx, req.ServiceID, purpose)
		if err != nil {
			return nil, err
		}
		resp.BookingHorizonMonths = cfg.BookingHorizonMonths
		resp.Schedules = append(resp.Schedules, models.FromEffectiveConfiguration(cfg))
	}

	return resp, nil
}

// UpdateSchedule заменяет настройки расписания услуги
// Каждое переопределение проверяется в слиянии с текущим глобальным окном, чтобы
// частично заданное время не дало окно с startTime >= endTime.
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: service=%d by user=%d", req.ServiceID, req.UserID)

	override, err := toDomainOverride(req)
	if err != nil {
		s.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, purpose := range domain.PurposeTypes {
			schedule, ok := override.Schedule(purpose)
			if !ok || schedule.Mode == domain.ModeGlobal {
				continue
			}

			window, err := s.calendarRepo.GetGlobalWindow(ctx, purpose)
			if err != nil && !errors.Is(err, calendarRepo.ErrWindowNotFound) {
				return fmt.Errorf("%w: failed to get global window: %w", ErrInternal, err)
			}
			if err != nil {
				window = nil
			}

			merged := Merge(req.ServiceID, purpose, window, override)
			if err := merged.Validate(); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidInput, purpose, err)
			}
		}

		if _, err := s.overrideRepo.Upsert(ctx, override); err != nil {
			return fmt.Errorf("%w: failed to save override: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("UpdateSchedule: service=%d rejected: %v", req.ServiceID, err)
		} else {
			s.logger.Error("UpdateSchedule: service=%d failed: %v", req.ServiceID, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateSchedule: service=%d saved, horizon=%d months", req.ServiceID, override.BookingHorizonMonths)

	return s.GetSchedule(ctx, &models.GetScheduleRequest{ServiceID: req.ServiceID})
}

func toDomainOverride(req *models.UpdateScheduleRequest) (*domain.ServiceScheduleOverride, error) {
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	horizon := domain.DefaultBookingHorizonMonths
	if req.BookingHorizonMonths != nil {
		horizon = *req.BookingHorizonMonths
	}
	if err := domain.ValidateHorizon(horizon); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	override := &domain.ServiceScheduleOverride{
		ServiceID:            req.ServiceID,
		BookingHorizonMonths: horizon,
		Schedules:            make(map[domain.PurposeType]domain.PurposeSchedule, len(req.Schedules)),
	}

	for rawPurpose, input := range req.Schedules {
		purpose, err := domain.ParsePurposeType(rawPurpose)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		schedule, err := toDomainPurposeSchedule(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, purpose, err)
		}
		override.Schedules[purpose] = schedule
	}

	return override, nil
}

func toDomainPurposeSchedule(input models.PurposeScheduleInput) (domain.PurposeSchedule, error) {
	mode, err := domain.ParseScheduleMode(input.Mode)
	if err != nil {
		return domain.PurposeSchedule{}, err
	}

	schedule := domain.PurposeSchedule{Mode: mode}

	if input.CustomWeekdays != nil {
		set, err := domain.ParseWeekdaySet(input.CustomWeekdays)
		if err != nil {
			return domain.PurposeSchedule{}, err
		}
		schedule.CustomWeekdays = &set
	}

	if input.StartTime != nil {
		t, err := types.NewTimeStringFromString(*input.StartTime)
		if err != nil {
			return domain.PurposeSchedule{}, err
		}
		schedule.StartTime = &t
	}

	if input.EndTime != nil {
		t, err := types.NewTimeStringFromString(*input.EndTime)
		if err != nil {
			return domain.PurposeSchedule{}, err
		}
		schedule.EndTime = &t
	}

	if input.SlotDurationMinutes != nil {
		if err := domain.ValidateSlotDuration(*input.SlotDurationMinutes); err != nil {
			return domain.PurposeSchedule{}, err
		}
		d := *input.SlotDurationMinutes
		schedule.SlotDurationMinutes = &d
	}

	return schedule, nil
}
