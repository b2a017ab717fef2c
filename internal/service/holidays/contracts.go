package holidays

import (
	"context"
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

// CalendarRepository хранилище глобальных выходных
type CalendarRepository interface {
	ListGlobalHolidays(ctx context.Context, rng domain.DateRange) ([]*domain.Holiday, error)
	CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error)
	DeleteHoliday(ctx context.Context, date time.Time) error
}

// OverrideRepository хранилище выходных услуг
type OverrideRepository interface {
	ListServiceHolidays(ctx context.Context, serviceID int64) ([]*domain.ServiceHoliday, error)
	CreateServiceHoliday(ctx context.Context, holiday *domain.ServiceHoliday) (*domain.ServiceHoliday, error)
	DeleteServiceHoliday(ctx context.Context, serviceID int64, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
