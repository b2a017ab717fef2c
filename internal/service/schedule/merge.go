package schedule

import (
	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

// Merge сливает глобальное окно и переопределение услуги в итоговую конфигурацию
//
// Без переопределения или в режиме GLOBAL дни, время и шаг берутся из глобального окна.
// Иначе набор дней определяется режимом, а startTime, endTime и длительность слота
// наследуются из глобального окна по отдельности, если не заданы в переопределении.
func Merge(serviceID int64, purpose domain.PurposeType, window *domain.OperatingWindow, override *domain.ServiceScheduleOverride) *domain.EffectiveConfiguration {
	if window == nil {
		window = domain.DefaultOperatingWindow(purpose)
	}

	cfg := &domain.EffectiveConfiguration{
		ServiceID:            serviceID,
		PurposeType:          purpose,
		Mode:                 domain.ModeGlobal,
		AvailableWeekdays:    window.AvailableWeekdays,
		StartTime:            window.StartTime,
		EndTime:              window.EndTime,
		SlotDurationMinutes:  window.SlotDurationMinutes,
		BookingHorizonMonths: override.HorizonMonths(),
	}

	schedule, ok := override.Schedule(purpose)
	if !ok || schedule.Mode == domain.ModeGlobal || schedule.Mode == "" {
		return cfg
	}

	cfg.Mode = schedule.Mode
	cfg.AvailableWeekdays = resolveWeekdays(schedule, window.AvailableWeekdays)

	if schedule.StartTime != nil {
		cfg.StartTime = *schedule.StartTime
	}
	if schedule.EndTime != nil {
		cfg.EndTime = *schedule.EndTime
	}
	if schedule.SlotDurationMinutes != nil {
		cfg.SlotDurationMinutes = *schedule.SlotDurationMinutes
	}

	return cfg
}

func resolveWeekdays(schedule domain.PurposeSchedule, baseline domain.WeekdaySet) domain.WeekdaySet {
	switch schedule.Mode {
	case domain.ModeWeekdays:
		return domain.WorkWeek
	case domain.ModeWeekends:
		return domain.Weekend
	case domain.ModeEveryday:
		return domain.AllWeekdays
	case domain.ModeCustom:
		// TODO: CUSTOM без customWeekdays молча наследует глобальные дни; ждем решения продукта, не стоит ли это отклонять
		if schedule.CustomWeekdays == nil {
			return baseline
		}
		return *schedule.CustomWeekdays
	case domain.ModeEverydayExcept:
		if schedule.CustomWeekdays == nil {
			return domain.AllWeekdays
		}
		return domain.AllWeekdays.Without(*schedule.CustomWeekdays)
	default:
		return baseline
	}
}
