package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

// ScheduleMode режим переопределения дней недели для услуги
type ScheduleMode string

const (
	ModeGlobal         ScheduleMode = "GLOBAL"          // глобальное расписание без изменений
	ModeWeekdays       ScheduleMode = "WEEKDAYS"        // пн - пт
	ModeWeekends       ScheduleMode = "WEEKENDS"        // сб, вс
	ModeEveryday       ScheduleMode = "EVERYDAY"        // все дни
	ModeCustom         ScheduleMode = "CUSTOM"          // customWeekdays как есть
	ModeEverydayExcept ScheduleMode = "EVERYDAY_EXCEPT" // все дни, кроме customWeekdays
)

// IsValid возвращает true для известных режимов
func (m ScheduleMode) IsValid() bool {
	switch m {
	case ModeGlobal, ModeWeekdays, ModeWeekends, ModeEveryday, ModeCustom, ModeEverydayExcept:
		return true
	}
	return false
}

// ParseScheduleMode разбирает режим; пустая строка означает GLOBAL
func ParseScheduleMode(s string) (ScheduleMode, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	if trimmed == "" {
		return ModeGlobal, nil
	}
	m := ScheduleMode(trimmed)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownScheduleMode, s)
	}
	return m, nil
}

// OperatingWindow глобальный шаблон рабочего времени для вида выезда
type OperatingWindow struct {
	PurposeType         PurposeType
	AvailableWeekdays   WeekdaySet
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	UpdatedAt           time.Time
}

// DefaultOperatingWindow окно, используемое когда глобальная запись отсутствует
func DefaultOperatingWindow(purpose PurposeType) *OperatingWindow {
	return &OperatingWindow{
		PurposeType:         purpose,
		AvailableWeekdays:   WorkWeek,
		StartTime:           DefaultStartTime,
		EndTime:             DefaultEndTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// PurposeSchedule переопределение расписания услуги для одного вида выезда
// Поля-указатели наследуются из глобального окна по отдельности, если равны nil
type PurposeSchedule struct {
	Mode                ScheduleMode
	CustomWeekdays      *WeekdaySet
	StartTime           *types.TimeString
	EndTime             *types.TimeString
	SlotDurationMinutes *int
}

// ServiceScheduleOverride настройки расписания конкретной услуги
type ServiceScheduleOverride struct {
	ServiceID            int64
	BookingHorizonMonths int
	Schedules            map[PurposeType]PurposeSchedule
	UpdatedAt            time.Time
}

// Schedule возвращает переопределение для вида выезда, если оно задано
func (o *ServiceScheduleOverride) Schedule(purpose PurposeType) (PurposeSchedule, bool) {
	if o == nil || o.Schedules == nil {
		return PurposeSchedule{}, false
	}
	s, ok := o.Schedules[purpose]
	return s, ok
}

// HorizonMonths горизонт бронирования; значения меньше 1 заменяются значением по умолчанию
func (o *ServiceScheduleOverride) HorizonMonths() int {
	if o == nil || o.BookingHorizonMonths < MinBookingHorizonMonths {
		return DefaultBookingHorizonMonths
	}
	return o.BookingHorizonMonths
}

// EffectiveConfiguration итоговая конфигурация (услуга, вид выезда) после слияния слоев
// Не хранится, пересчитывается на каждый запрос
type EffectiveConfiguration struct {
	ServiceID            int64
	PurposeType          PurposeType
	Mode                 ScheduleMode
	AvailableWeekdays    WeekdaySet
	StartTime            types.TimeString
	EndTime              types.TimeString
	SlotDurationMinutes  int
	BookingHorizonMonths int
}

// Validate проверяет инварианты итоговой конфигурации перед сохранением переопределения
func (c *EffectiveConfiguration) Validate() error {
	if err := validateTimeRange(c.StartTime, c.EndTime); err != nil {
		return err
	}
	if err := ValidateSlotDuration(c.SlotDurationMinutes); err != nil {
		return err
	}
	return ValidateHorizon(c.BookingHorizonMonths)
}

// ValidateHorizon проверяет горизонт бронирования в месяцах
func ValidateHorizon(months int) error {
	if months < MinBookingHorizonMonths || months > MaxBookingHorizonMonths {
		return fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidHorizon, months, MinBookingHorizonMonths, MaxBookingHorizonMonths)
	}
	return nil
}

// ValidateSlotDuration проверяет длительность слота при изменении настроек
func ValidateSlotDuration(minutes int) error {
	if minutes < MinSlotDurationMinutes || minutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidSlotDuration, minutes, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	return nil
}

func validateTimeRange(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, start, end)
	}
	return nil
}
