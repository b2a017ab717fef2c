package schedule

import (
	"context"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

// CalendarRepository источник глобальных окон рабочего времени
type CalendarRepository interface {
	GetGlobalWindow(ctx context.Context, purpose domain.PurposeType) (*domain.OperatingWindow, error)
}

// OverrideRepository источник переопределений расписания услуг
type OverrideRepository interface {
	GetOverride(ctx context.Context, serviceID int64, purpose domain.PurposeType) (*domain.ServiceScheduleOverride, error)
	Upsert(ctx context.Context, override *domain.ServiceScheduleOverride) (*domain.ServiceScheduleOverride, error)
}

// TxManager выполняет функцию внутри транзакции
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
