package override

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sung-woo-jang/living-craft-backend/internal/domain"
	"github.com/sung-woo-jang/living-craft-backend/pkg/types"
)

func TestPurposeRow_ToDomain(t *testing.T) {
	tests := []struct {
		name         string
		row          purposeRow
		wantMode     domain.ScheduleMode
		wantWeekdays *domain.WeekdaySet
		wantErr      bool
	}{
		{
			name:         "null weekdays stay unset",
			row:          purposeRow{mode: sql.NullString{String: "CUSTOM", Valid: true}},
			wantMode:     domain.ModeCustom,
			wantWeekdays: nil,
		},
		{
			name: "empty array is an empty set",
			row: purposeRow{
				mode:           sql.NullString{String: "CUSTOM", Valid: true},
				customWeekdays: pq.StringArray{},
			},
			wantMode:     domain.ModeCustom,
			wantWeekdays: weekdaySet(),
		},
		{
			name: "weekday codes",
			row: purposeRow{
				mode:           sql.NullString{String: "EVERYDAY_EXCEPT", Valid: true},
				customWeekdays: pq.StringArray{"sat", "sun"},
			},
			wantMode:     domain.ModeEverydayExcept,
			wantWeekdays: weekdaySet(time.Saturday, time.Sunday),
		},
		{
			name:    "unknown mode",
			row:     purposeRow{mode: sql.NullString{String: "BIWEEKLY", Valid: true}},
			wantErr: true,
		},
		{
			name: "unknown weekday code",
			row: purposeRow{
				mode:           sql.NullString{String: "CUSTOM", Valid: true},
				customWeekdays: pq.StringArray{"mon", "funday"},
			},
			wantErr: true,
		},
		{
			name: "broken start time",
			row: purposeRow{
				mode:      sql.NullString{String: "WEEKDAYS", Valid: true},
				startTime: sql.NullString{String: "9:00", Valid: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.row.toDomain()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, got.Mode)
			assert.Equal(t, tt.wantWeekdays, got.CustomWeekdays)
		})
	}
}

func TestPurposeRow_ToDomain_OptionalFields(t *testing.T) {
	row := purposeRow{
		mode:         sql.NullString{String: "WEEKENDS", Valid: true},
		startTime:    sql.NullString{String: "10:00:00", Valid: true},
		slotDuration: sql.NullInt64{Int64: 90, Valid: true},
	}

	got, err := row.toDomain()
	require.NoError(t, err)

	require.NotNil(t, got.StartTime)
	assert.Equal(t, types.TimeString("10:00"), *got.StartTime)
	assert.Nil(t, got.EndTime)
	require.NotNil(t, got.SlotDurationMinutes)
	assert.Equal(t, 90, *got.SlotDurationMinutes)
}

func TestMapOverride(t *testing.T) {
	horizon := sql.NullInt64{Int64: 6, Valid: true}
	updatedAt := sql.NullTime{Time: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC), Valid: true}

	t.Run("no purpose row", func(t *testing.T) {
		got, err := mapOverride(5, domain.PurposeEstimate, horizon, updatedAt, purposeRow{})
		require.NoError(t, err)

		assert.Equal(t, int64(5), got.ServiceID)
		assert.Equal(t, 6, got.BookingHorizonMonths)
		assert.Equal(t, updatedAt.Time, got.UpdatedAt)
		_, ok := got.Schedule(domain.PurposeEstimate)
		assert.False(t, ok)
	})

	t.Run("purpose row", func(t *testing.T) {
		row := purposeRow{
			mode:           sql.NullString{String: "CUSTOM", Valid: true},
			customWeekdays: pq.StringArray{"tue"},
		}
		got, err := mapOverride(5, domain.PurposeConstruction, horizon, updatedAt, row)
		require.NoError(t, err)

		schedule, ok := got.Schedule(domain.PurposeConstruction)
		require.True(t, ok)
		assert.Equal(t, domain.ModeCustom, schedule.Mode)
		assert.Equal(t, weekdaySet(time.Tuesday), schedule.CustomWeekdays)

		_, ok = got.Schedule(domain.PurposeEstimate)
		assert.False(t, ok)
	})

	t.Run("corrupt purpose row", func(t *testing.T) {
		row := purposeRow{mode: sql.NullString{String: "SOMETIMES", Valid: true}}
		_, err := mapOverride(5, domain.PurposeEstimate, horizon, updatedAt, row)
		assert.Error(t, err)
	})
}

func TestBuildOverrideQuery(t *testing.T) {
	query, args, err := buildOverrideQuery(12, domain.PurposeEstimate).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM service_schedules s")
	assert.Contains(t, query, "LEFT JOIN service_schedule_purposes p ON p.service_id = s.service_id AND p.purpose_type = $1")
	assert.Contains(t, query, "s.service_id = $2")
	assert.NotContains(t, query, "?")
	assert.Equal(t, []interface{}{"ESTIMATE", int64(12)}, args)
}

func weekdaySet(days ...time.Weekday) *domain.WeekdaySet {
	s := domain.NewWeekdaySet(days...)
	return &s
}
