package delete_holiday

import (
	"context"

	"github.com/sung-woo-jang/living-craft-backend/internal/service/holidays/models"
)

type HolidayService interface {
	Delete(ctx context.Context, req *models.DeleteHolidayRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
