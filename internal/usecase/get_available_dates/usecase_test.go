package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/internal/service/schedule"
	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

var kst = time.FixedZone("KST", 9*60*60)

// понедельник, полдень
var monday = time.Date(2026, 10, 19, 12, 0, 0, 0, kst)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeResolver struct {
	cfg   *domain.EffectiveConfiguration
	err   error
	calls int
}

func (f *fakeResolver) Resolve(_ context.Context, serviceID int64, purpose domain.PurposeType) (*domain.EffectiveConfiguration, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	cfg := *f.cfg
	cfg.ServiceID = serviceID
	cfg.PurposeType = purpose
	return &cfg, nil
}

type fakeCalendarRepo struct {
	holidays  []*domain.Holiday
	err       error
	lastRange domain.DateRange
}

func (f *fakeCalendarRepo) ListGlobalHolidays(_ context.Context, rng domain.DateRange) ([]*domain.Holiday, error) {
	f.lastRange = rng
	return f.holidays, f.err
}

type fakeOverrideRepo struct {
	holidays []*domain.ServiceHoliday
	err      error
}

func (f *fakeOverrideRepo) ListServiceHolidays(_ context.Context, _ int64) ([]*domain.ServiceHoliday, error) {
	return f.holidays, f.err
}

type fakeReservationRepo struct{}

func (fakeReservationRepo) ListReservedTimes(context.Context, int64, domain.PurposeType, time.Time) ([]types.TimeString, error) {
	return nil, nil
}

type fixture struct {
	resolver  *fakeResolver
	calendar  *fakeCalendarRepo
	overrides *fakeOverrideRepo
}

func newFixture() *fixture {
	return &fixture{
		resolver: &fakeResolver{cfg: &domain.EffectiveConfiguration{
			Mode:                 domain.ModeGlobal,
			AvailableWeekdays:    domain.WorkWeek,
			StartTime:            "18:00",
			EndTime:              "22:00",
			SlotDurationMinutes:  60,
			BookingHorizonMonths: 3,
		}},
		calendar: &fakeCalendarRepo{holidays: []*domain.Holiday{
			{Date: utcDate(2026, 10, 9), Reason: "Hangul Day"},
			{Date: utcDate(2026, 10, 21), Reason: "founding day"},
		}},
		overrides: &fakeOverrideRepo{holidays: []*domain.ServiceHoliday{
			{ServiceID: 1, Date: utcDate(2026, 10, 22), Reason: "crew training"},
		}},
	}
}

func (f *fixture) useCase(now time.Time) *UseCase {
	return NewUseCase(f.resolver, f.calendar, f.overrides, nil, fixedClock{now: now}, nopLogger{})
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func octoberRequest() *Request {
	return &Request{ServiceID: 1, PurposeType: "ESTIMATE", Year: 2026, Month: 10}
}

func TestExecute_October(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase(monday).Execute(context.Background(), octoberRequest())
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 10, resp.Month)
	assert.Equal(t, domain.PurposeEstimate, resp.PurposeType)
	assert.True(t, time.Date(2027, 1, 19, 0, 0, 0, 0, kst).Equal(resp.MaxBookableDate))
	assert.Equal(t, 1, f.resolver.calls)

	byDay := make(map[int]UnavailableDate, len(resp.UnavailableDates))
	for _, d := range resp.UnavailableDates {
		byDay[d.Date.Day()] = d
	}

	// 18 прошедших дней, 3 дня выходных (24, 25, 31), глобальный и сервисный выходной
	assert.Len(t, resp.UnavailableDates, 23)

	for day := 1; day <= 18; day++ {
		assert.Equal(t, domain.DayPast, byDay[day].State, "day %d", day)
	}
	// прошедшая дата важнее глобального выходного
	assert.Equal(t, "past date", byDay[9].Reason)

	assert.Equal(t, domain.DayGlobalHoliday, byDay[21].State)
	assert.Equal(t, "founding day", byDay[21].Reason)
	assert.Equal(t, domain.DayServiceHoliday, byDay[22].State)
	assert.Equal(t, "crew training", byDay[22].Reason)
	for _, day := range []int{24, 25, 31} {
		assert.Equal(t, domain.DayNonOperatingWeekday, byDay[day].State, "day %d", day)
	}

	for _, day := range []int{19, 20, 23, 26, 27, 28, 29, 30} {
		_, excluded := byDay[day]
		assert.False(t, excluded, "day %d must be available", day)
	}

	// порядок дат сохраняется
	for i := 1; i < len(resp.UnavailableDates); i++ {
		assert.True(t, resp.UnavailableDates[i-1].Date.Before(resp.UnavailableDates[i].Date))
	}

	assert.True(t, time.Date(2026, 10, 1, 0, 0, 0, 0, kst).Equal(f.calendar.lastRange.From))
	assert.True(t, time.Date(2026, 10, 31, 0, 0, 0, 0, kst).Equal(f.calendar.lastRange.To))
}

func TestExecute_HorizonSplitsMonth(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase(monday).Execute(context.Background(),
		&Request{ServiceID: 1, PurposeType: "ESTIMATE", Year: 2027, Month: 1})
	require.NoError(t, err)

	beyond := 0
	for _, d := range resp.UnavailableDates {
		if d.State == domain.DayBeyondHorizon {
			beyond++
			assert.Greater(t, d.Date.Day(), 19)
			assert.Equal(t, "beyond booking horizon of 3 months", d.Reason)
		}
	}
	assert.Equal(t, 12, beyond)
}

func TestExecute_WholeMonthBeyondHorizon(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase(monday).Execute(context.Background(),
		&Request{ServiceID: 1, PurposeType: "CONSTRUCTION", Year: 2027, Month: 2})
	require.NoError(t, err)

	require.Len(t, resp.UnavailableDates, 28)
	for _, d := range resp.UnavailableDates {
		assert.Equal(t, domain.DayBeyondHorizon, d.State)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "month 13", req: &Request{ServiceID: 1, PurposeType: "ESTIMATE", Year: 2026, Month: 13}},
		{name: "month 0", req: &Request{ServiceID: 1, PurposeType: "ESTIMATE", Year: 2026, Month: 0}},
		{name: "year", req: &Request{ServiceID: 1, PurposeType: "ESTIMATE", Year: 26, Month: 10}},
		{name: "purpose", req: &Request{ServiceID: 1, PurposeType: "", Year: 2026, Month: 10}},
		{name: "service", req: &Request{ServiceID: -1, PurposeType: "ESTIMATE", Year: 2026, Month: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.useCase(monday).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, f.resolver.calls)
		})
	}
}

func TestExecute_BrokenConfiguration(t *testing.T) {
	f := newFixture()
	f.resolver.cfg.SlotDurationMinutes = -15

	resp, err := f.useCase(monday).Execute(context.Background(), octoberRequest())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, resp)
}

func TestExecute_ErrorAbortsWholeMonth(t *testing.T) {
	upstream := errors.New("connection refused")

	t.Run("resolver", func(t *testing.T) {
		f := newFixture()
		f.resolver.err = upstream
		resp, err := f.useCase(monday).Execute(context.Background(), octoberRequest())
		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, upstream)
		assert.Nil(t, resp)
	})

	t.Run("global holidays", func(t *testing.T) {
		f := newFixture()
		f.calendar.err = upstream
		resp, err := f.useCase(monday).Execute(context.Background(), octoberRequest())
		assert.ErrorIs(t, err, ErrInternal)
		assert.Nil(t, resp)
	})

	t.Run("service holidays", func(t *testing.T) {
		f := newFixture()
		f.overrides.err = upstream
		resp, err := f.useCase(monday).Execute(context.Background(), octoberRequest())
		assert.ErrorIs(t, err, ErrInternal)
		assert.Nil(t, resp)
	})
}

func TestExecute_CorruptStoredSchedule(t *testing.T) {
	f := newFixture()
	f.resolver.err = fmt.Errorf("%w: unknown weekday code", schedule.ErrInvalidConfiguration)

	resp, err := f.useCase(monday).Execute(context.Background(), octoberRequest())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestNewUseCase_NilClockUsesRealTime(t *testing.T) {
	f := newFixture()
	uc := NewUseCase(f.resolver, f.calendar, f.overrides, nil, nil, nopLogger{})

	now := time.Now()
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:   1,
		PurposeType: "ESTIMATE",
		Year:        now.Year(),
		Month:       int(now.Month()),
	})
	require.NoError(t, err)
	assert.False(t, resp.MaxBookableDate.IsZero())
}
