package models

import (
	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

// Request модели

// GetScheduleRequest запрос итогового расписания услуги
// PurposeType пустой - вернуть оба вида выезда
type GetScheduleRequest struct {
	ServiceID   int64  `json:"serviceId"`
	PurposeType string `json:"purposeType,omitempty"`
}

// UpdateScheduleRequest запрос на замену настроек расписания услуги
// Виды выезда, отсутствующие в Schedules, возвращаются к глобальному расписанию
type UpdateScheduleRequest struct {
	UserID               int64                           `json:"-"`
	ServiceID            int64                           `json:"-"`
	BookingHorizonMonths *int                            `json:"bookingHorizonMonths,omitempty"`
	Schedules            map[string]PurposeScheduleInput `json:"schedules"`
}

// PurposeScheduleInput переопределение для одного вида выезда
// CustomWeekdays: nil - не задано, [] - пустой набор
type PurposeScheduleInput struct {
	Mode                string   `json:"mode"`
	CustomWeekdays      []string `json:"customWeekdays"`
	StartTime           *string  `json:"startTime,omitempty"`
	EndTime             *string  `json:"endTime,omitempty"`
	SlotDurationMinutes *int     `json:"slotDurationMinutes,omitempty"`
}

// Response модели

// ScheduleResponse итоговое расписание услуги по видам выезда
type ScheduleResponse struct {
	ServiceID            int64                   `json:"serviceId"`
	BookingHorizonMonths int                     `json:"bookingHorizonMonths"`
	Schedules            []EffectiveScheduleItem `json:"schedules"`
}

// EffectiveScheduleItem итоговая конфигурация для одного вида выезда
type EffectiveScheduleItem struct {
	PurposeType         string   `json:"purposeType"`
	Mode                string   `json:"mode"`
	AvailableWeekdays   []string `json:"availableWeekdays"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
}

// Методы конвертации

// FromEffectiveConfiguration конвертирует итоговую конфигурацию в DTO
func FromEffectiveConfiguration(c *domain.EffectiveConfiguration) EffectiveScheduleItem {
	return EffectiveScheduleItem{
		PurposeType:         string(c.PurposeType),
		Mode:                string(c.Mode),
		AvailableWeekdays:   c.AvailableWeekdays.Codes(),
		StartTime:           c.StartTime.String(),
		EndTime:             c.EndTime.String(),
		SlotDurationMinutes: c.SlotDurationMinutes,
	}
}
