package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
)

func workWeekConfig() *domain.EffectiveConfiguration {
	return &domain.EffectiveConfiguration{
		ServiceID:            1,
		PurposeType:          domain.PurposeEstimate,
		Mode:                 domain.ModeGlobal,
		AvailableWeekdays:    domain.WorkWeek,
		StartTime:            "18:00",
		EndTime:              "22:00",
		SlotDurationMinutes:  60,
		BookingHorizonMonths: 3,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, kst)
}

func TestEvaluateDate(t *testing.T) {
	// вторник, 10:30
	now := time.Date(2026, 10, 20, 10, 30, 0, 0, kst)

	holidays := NewHolidayCalendar(
		[]*domain.Holiday{
			{Date: day(2026, 10, 24), Reason: "national holiday"}, // суббота
			{Date: day(2026, 10, 19), Reason: "past holiday"},
			{Date: day(2026, 10, 28), Reason: "company day"},
		},
		[]*domain.ServiceHoliday{
			{ServiceID: 1, Date: day(2026, 10, 22), Reason: ""},
			{ServiceID: 1, Date: day(2026, 10, 28), Reason: "team off"},
			{ServiceID: 1, Date: day(2026, 10, 23), Reason: "equipment service"},
		},
	)

	tests := []struct {
		name       string
		date       time.Time
		wantState  domain.DayState
		wantReason string
	}{
		{name: "yesterday", date: day(2026, 10, 18), wantState: domain.DayPast, wantReason: domain.ReasonPastDate},
		{name: "past wins over holiday", date: day(2026, 10, 19), wantState: domain.DayPast, wantReason: domain.ReasonPastDate},
		{name: "today", date: day(2026, 10, 20), wantState: domain.DayOperating},
		{name: "horizon boundary is bookable", date: day(2027, 1, 20), wantState: domain.DayOperating},
		{
			name:       "day after horizon",
			date:       day(2027, 1, 21),
			wantState:  domain.DayBeyondHorizon,
			wantReason: "beyond booking horizon of 3 months",
		},
		{name: "global holiday beats weekday", date: day(2026, 10, 24), wantState: domain.DayGlobalHoliday, wantReason: "national holiday"},
		{name: "global holiday beats service holiday", date: day(2026, 10, 28), wantState: domain.DayGlobalHoliday, wantReason: "company day"},
		{name: "service holiday", date: day(2026, 10, 23), wantState: domain.DayServiceHoliday, wantReason: "equipment service"},
		{name: "service holiday without reason", date: day(2026, 10, 22), wantState: domain.DayServiceHoliday, wantReason: domain.ReasonServiceHoliday},
		{name: "saturday", date: day(2026, 10, 31), wantState: domain.DayNonOperatingWeekday, wantReason: domain.ReasonNonOperatingWeekday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateDate(tt.date, now, workWeekConfig(), holidays)
			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.Equal(t, tt.wantState != domain.DayOperating, got.Excluded())
		})
	}
}

func TestEvaluateDate_CalendarDateIsZoneIndependent(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 30, 0, 0, kst)

	// 2026-10-20 23:00 UTC - это уже 21 октября по KST, но запрошена дата 20-е
	date := time.Date(2026, 10, 20, 23, 0, 0, 0, time.UTC)

	got := EvaluateDate(date, now, workWeekConfig(), nil)
	assert.Equal(t, domain.DayOperating, got.State)
}

func TestEvaluateDate_BlankGlobalReason(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 30, 0, 0, kst)
	holidays := NewHolidayCalendar([]*domain.Holiday{{Date: day(2026, 10, 21), Reason: "  "}}, nil)

	got := EvaluateDate(day(2026, 10, 21), now, workWeekConfig(), holidays)
	assert.Equal(t, domain.DayGlobalHoliday, got.State)
	assert.Equal(t, domain.ReasonHoliday, got.Reason)
}

func TestEvaluateDate_EmptyWeekdaySet(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 30, 0, 0, kst)
	cfg := workWeekConfig()
	cfg.AvailableWeekdays = domain.NoWeekdays

	got := EvaluateDate(day(2026, 10, 21), now, cfg, nil)
	assert.Equal(t, domain.DayNonOperatingWeekday, got.State)
}
