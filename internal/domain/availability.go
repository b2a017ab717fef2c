package domain

import "fmt"

// DayState итоговое состояние даты
type DayState string

const (
	DayPast                DayState = "PAST"
	DayBeyondHorizon       DayState = "BEYOND_HORIZON"
	DayGlobalHoliday       DayState = "GLOBAL_HOLIDAY"
	DayServiceHoliday      DayState = "SERVICE_HOLIDAY"
	DayNonOperatingWeekday DayState = "NON_OPERATING_WEEKDAY"
	DayOperating           DayState = "OPERATING"
)

// SlotState состояние временного слота в рабочий день
type SlotState string

const (
	SlotFree    SlotState = "FREE"
	SlotTaken   SlotState = "TAKEN"
	SlotElapsed SlotState = "ELAPSED"
)

// Причины исключения даты
const (
	ReasonPastDate              = "past date"
	ReasonHoliday               = "holiday"
	ReasonServiceHoliday        = "service holiday"
	ReasonNonOperatingWeekday   = "weekday not in operating schedule"
	reasonBeyondHorizonTemplate = "beyond booking horizon of %d months"
)

// BeyondHorizonReason причина для даты за горизонтом бронирования
func BeyondHorizonReason(months int) string {
	return fmt.Sprintf(reasonBeyondHorizonTemplate, months)
}
