package get_available_dates

import (
	"context"
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

// ScheduleResolver источник итоговой конфигурации расписания
type ScheduleResolver interface {
	Resolve(ctx context.Context, serviceID int64, purpose domain.PurposeType) (*domain.EffectiveConfiguration, error)
}

// CalendarRepository источник глобальных выходных
type CalendarRepository interface {
	ListGlobalHolidays(ctx context.Context, rng domain.DateRange) ([]*domain.Holiday, error)
}

// OverrideRepository источник выходных услуги
type OverrideRepository interface {
	ListServiceHolidays(ctx context.Context, serviceID int64) ([]*domain.ServiceHoliday, error)
}

// MetricsRecorder счетчики запросов доступности
type MetricsRecorder interface {
	RecordAvailabilityQuery(query, purposeType, outcome string)
	RecordDateExclusion(purposeType, state string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
// Время возвращается в часовом поясе расписания
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}

type noopMetrics struct{}

func (noopMetrics) RecordAvailabilityQuery(string, string, string) {}
func (noopMetrics) RecordDateExclusion(string, string)             {}
