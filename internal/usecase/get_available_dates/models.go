package get_available_dates

import (
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

// Request модель запроса недоступных дат за месяц
type Request struct {
	ServiceID   int64
	PurposeType string
	Year        int
	Month       int // 1..12
}

// Response список исключенных дат месяца
// Даты, которых нет в UnavailableDates, доступны для бронирования
type Response struct {
	ServiceID        int64
	PurposeType      domain.PurposeType
	Year             int
	Month            int
	MaxBookableDate  time.Time
	UnavailableDates []UnavailableDate
}

// UnavailableDate исключенная дата с причиной
type UnavailableDate struct {
	Date   time.Time
	Reason string
	State  domain.DayState
}
