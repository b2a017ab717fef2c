package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/pkg/ptr"
	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

func eveningWindow() *domain.OperatingWindow {
	return &domain.OperatingWindow{
		PurposeType:         domain.PurposeEstimate,
		AvailableWeekdays:   domain.WorkWeek,
		StartTime:           "18:00",
		EndTime:             "22:00",
		SlotDurationMinutes: 60,
	}
}

func overrideWith(s domain.PurposeSchedule) *domain.ServiceScheduleOverride {
	return &domain.ServiceScheduleOverride{
		ServiceID:            10,
		BookingHorizonMonths: 3,
		Schedules:            map[domain.PurposeType]domain.PurposeSchedule{domain.PurposeEstimate: s},
	}
}

func weekdays(days ...time.Weekday) *domain.WeekdaySet {
	s := domain.NewWeekdaySet(days...)
	return &s
}

func TestMerge_NoOverrideEqualsGlobalWindow(t *testing.T) {
	window := eveningWindow()

	cfg := Merge(10, domain.PurposeEstimate, window, nil)

	assert.Equal(t, domain.ModeGlobal, cfg.Mode)
	assert.Equal(t, window.AvailableWeekdays, cfg.AvailableWeekdays)
	assert.Equal(t, window.StartTime, cfg.StartTime)
	assert.Equal(t, window.EndTime, cfg.EndTime)
	assert.Equal(t, window.SlotDurationMinutes, cfg.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultBookingHorizonMonths, cfg.BookingHorizonMonths)
}

func TestMerge_MissingWindowUsesDefaults(t *testing.T) {
	cfg := Merge(10, domain.PurposeConstruction, nil, nil)

	assert.Equal(t, domain.WorkWeek, cfg.AvailableWeekdays)
	assert.Equal(t, domain.DefaultStartTime, cfg.StartTime)
	assert.Equal(t, domain.DefaultEndTime, cfg.EndTime)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, cfg.SlotDurationMinutes)
}

func TestMerge_GlobalModeIgnoresOverrideFields(t *testing.T) {
	override := overrideWith(domain.PurposeSchedule{
		Mode:      domain.ModeGlobal,
		StartTime: ptr.Ptr(types.TimeString("07:00")),
	})
	override.BookingHorizonMonths = 6

	cfg := Merge(10, domain.PurposeEstimate, eveningWindow(), override)

	assert.Equal(t, types.TimeString("18:00"), cfg.StartTime)
	assert.Equal(t, 6, cfg.BookingHorizonMonths)
}

func TestMerge_OtherPurposeNotAffected(t *testing.T) {
	override := overrideWith(domain.PurposeSchedule{Mode: domain.ModeEveryday})

	cfg := Merge(10, domain.PurposeConstruction, eveningWindow(), override)

	assert.Equal(t, domain.ModeGlobal, cfg.Mode)
	assert.Equal(t, domain.WorkWeek, cfg.AvailableWeekdays)
}

func TestMerge_Modes(t *testing.T) {
	tests := []struct {
		name     string
		schedule domain.PurposeSchedule
		want     domain.WeekdaySet
	}{
		{name: "weekdays", schedule: domain.PurposeSchedule{Mode: domain.ModeWeekdays}, want: domain.WorkWeek},
		{name: "weekends", schedule: domain.PurposeSchedule{Mode: domain.ModeWeekends}, want: domain.Weekend},
		{name: "everyday", schedule: domain.PurposeSchedule{Mode: domain.ModeEveryday}, want: domain.AllWeekdays},
		{
			name:     "custom",
			schedule: domain.PurposeSchedule{Mode: domain.ModeCustom, CustomWeekdays: weekdays(time.Tuesday, time.Thursday)},
			want:     domain.NewWeekdaySet(time.Tuesday, time.Thursday),
		},
		{
			name:     "custom without weekdays falls back to global",
			schedule: domain.PurposeSchedule{Mode: domain.ModeCustom},
			want:     domain.WorkWeek,
		},
		{
			name:     "custom with empty set closes every day",
			schedule: domain.PurposeSchedule{Mode: domain.ModeCustom, CustomWeekdays: weekdays()},
			want:     domain.NoWeekdays,
		},
		{
			name:     "everyday except weekend",
			schedule: domain.PurposeSchedule{Mode: domain.ModeEverydayExcept, CustomWeekdays: weekdays(time.Saturday, time.Sunday)},
			want:     domain.WorkWeek,
		},
		{
			name:     "everyday except nothing",
			schedule: domain.PurposeSchedule{Mode: domain.ModeEverydayExcept},
			want:     domain.AllWeekdays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Merge(10, domain.PurposeEstimate, eveningWindow(), overrideWith(tt.schedule))
			assert.Equal(t, tt.want, cfg.AvailableWeekdays)
			assert.Equal(t, tt.schedule.Mode, cfg.Mode)
		})
	}
}

func TestMerge_FieldsInheritIndependently(t *testing.T) {
	override := overrideWith(domain.PurposeSchedule{
		Mode:      domain.ModeWeekends,
		StartTime: ptr.Ptr(types.TimeString("10:00")),
	})

	cfg := Merge(10, domain.PurposeEstimate, eveningWindow(), override)

	assert.Equal(t, types.TimeString("10:00"), cfg.StartTime)
	assert.Equal(t, types.TimeString("22:00"), cfg.EndTime)
	assert.Equal(t, 60, cfg.SlotDurationMinutes)

	override = overrideWith(domain.PurposeSchedule{
		Mode:                domain.ModeWeekends,
		SlotDurationMinutes: ptr.Ptr(30),
	})

	cfg = Merge(10, domain.PurposeEstimate, eveningWindow(), override)

	assert.Equal(t, types.TimeString("18:00"), cfg.StartTime)
	assert.Equal(t, 30, cfg.SlotDurationMinutes)
}
