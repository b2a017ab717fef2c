package domain

import "github.com/sung-woo-jang/living-craft-backend/pkg/types"

// Значения по умолчанию
const (
	DefaultBookingHorizonMonths = 3
	DefaultSlotDurationMinutes  = 60

	DefaultStartTime types.TimeString = "09:00"
	DefaultEndTime   types.TimeString = "18:00"
)

// Ограничения бизнес-валидации
const (
	MinSlotDurationMinutes  = 5
	MaxSlotDurationMinutes  = 480 // 8 часов
	MinBookingHorizonMonths = 1
	MaxBookingHorizonMonths = 12
	MaxHolidayReasonLength  = 200
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
