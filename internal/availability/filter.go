package availability

import (
	"strings"
	"time"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

// HolidayCalendar глобальные и сервисные выходные, проиндексированные по дате
type HolidayCalendar struct {
	global  map[string]string
	service map[string]string
}

// NewHolidayCalendar строит индекс выходных
func NewHolidayCalendar(global []*domain.Holiday, service []*domain.ServiceHoliday) *HolidayCalendar {
	c := &HolidayCalendar{
		global:  make(map[string]string, len(global)),
		service: make(map[string]string, len(service)),
	}
	for _, h := range global {
		c.global[dateKey(h.Date)] = h.Reason
	}
	for _, h := range service {
		c.service[dateKey(h.Date)] = h.Reason
	}
	return c
}

// GlobalHoliday возвращает причину глобального выходного на дату
func (c *HolidayCalendar) GlobalHoliday(date time.Time) (string, bool) {
	if c == nil {
		return "", false
	}
	r, ok := c.global[dateKey(date)]
	return r, ok
}

// ServiceHoliday возвращает причину выходного услуги на дату
func (c *HolidayCalendar) ServiceHoliday(date time.Time) (string, bool) {
	if c == nil {
		return "", false
	}
	r, ok := c.service[dateKey(date)]
	return r, ok
}

// Decision результат проверки даты
type Decision struct {
	State  domain.DayState
	Reason string
}

// Excluded возвращает true, если дата недоступна для бронирования
func (d Decision) Excluded() bool {
	return d.State != domain.DayOperating
}

// EvaluateDate применяет цепочку исключений к дате. Первое совпадение выигрывает:
// прошедшая дата, горизонт бронирования, глобальный выходной, выходной услуги, день недели.
// Календарная дата date сравнивается с "сегодня" в локации now.
func EvaluateDate(date, now time.Time, cfg *domain.EffectiveConfiguration, holidays *HolidayCalendar) Decision {
	loc := now.Location()
	day := AsDate(date, loc)
	today := DateOnly(now, loc)

	if day.Before(today) {
		return Decision{State: domain.DayPast, Reason: domain.ReasonPastDate}
	}

	if day.After(MaxBookableDate(now, cfg.BookingHorizonMonths)) {
		return Decision{
			State:  domain.DayBeyondHorizon,
			Reason: domain.BeyondHorizonReason(cfg.BookingHorizonMonths),
		}
	}

	if reason, ok := holidays.GlobalHoliday(day); ok {
		return Decision{State: domain.DayGlobalHoliday, Reason: reasonOr(reason, domain.ReasonHoliday)}
	}

	if reason, ok := holidays.ServiceHoliday(day); ok {
		return Decision{State: domain.DayServiceHoliday, Reason: reasonOr(reason, domain.ReasonServiceHoliday)}
	}

	if !cfg.AvailableWeekdays.Contains(day.Weekday()) {
		return Decision{State: domain.DayNonOperatingWeekday, Reason: domain.ReasonNonOperatingWeekday}
	}

	return Decision{State: domain.DayOperating}
}

func reasonOr(reason, fallback string) string {
	if strings.TrimSpace(reason) == "" {
		return fallback
	}
	return reason
}

func dateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}
