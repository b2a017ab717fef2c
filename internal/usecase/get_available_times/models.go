package get_available_times

import (
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

// Request модель запроса на получение слотов на одну дату
type Request struct {
	ServiceID   int64     // ID услуги
	PurposeType string    // ESTIMATE | CONSTRUCTION
	Date        time.Time // Календарная дата (время суток игнорируется)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date           time.Time
	ServiceID      int64
	PurposeType    domain.PurposeType
	WeekdayLabel   string          // код дня недели: "mon", "tue", ...
	IsOperatingDay bool            // false - дата исключена, Reason заполнен
	State          domain.DayState // состояние даты
	Reason         string          // причина исключения даты
	DefaultTime    types.TimeString
	Slots          []Slot
}

// Slot модель временного слота
type Slot struct {
	Time        types.TimeString
	IsTaken     bool // есть бронь на это время
	IsAvailable bool // свободен и еще не наступил
	State       domain.SlotState
}
