package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeek(t *testing.T) {
	week := DefaultWeek(1)
	require.Len(t, week, 7)

	for d := Sunday; d <= Saturday; d++ {
		rule := week[d]
		assert.Equal(t, d, rule.DayOfWeek)
		assert.Equal(t, "09:00", rule.StartTime)
		assert.Equal(t, "18:00", rule.EndTime)
	}
	assert.False(t, week[Sunday].IsAvailable)
	assert.False(t, week[Saturday].IsAvailable)
	for d := Monday; d <= Friday; d++ {
		assert.True(t, week[d].IsAvailable, "weekday %s should default open", d)
	}
}

func TestMergeWeek_FillsMissingDays(t *testing.T) {
	persisted := []AvailabilityRule{
		{ProfessionalID: 1, DayOfWeek: Monday, IsAvailable: true, StartTime: "10:00", EndTime: "14:00"},
	}
	week := MergeWeek(1, persisted)
	require.Len(t, week, 7)

	assert.Equal(t, "10:00", week[Monday].StartTime)
	assert.True(t, week[Monday].IsAvailable)

	// Days absent from a persisted schedule are closed, not defaulted open.
	for d := Sunday; d <= Saturday; d++ {
		if d == Monday {
			continue
		}
		assert.False(t, week[d].IsAvailable, "day %s should be closed", d)
	}
}

func TestMergeWeek_NoPersistedRowsUsesDefaults(t *testing.T) {
	week := MergeWeek(1, nil)
	require.Len(t, week, 7)
	assert.True(t, week[Wednesday].IsAvailable)
	assert.False(t, week[Sunday].IsAvailable)
}

func TestValidateWeek_FlagsOffendingDaysIndividually(t *testing.T) {
	week := DefaultWeek(1)
	week[Monday].StartTime = "18:00"
	week[Monday].EndTime = "09:00"
	week[Thursday].StartTime = "12:00"
	week[Thursday].EndTime = "12:00"

	errs := ValidateWeek(week)
	require.Len(t, errs, 2)
	assert.Equal(t, Monday, errs[0].Day)
	assert.Equal(t, Thursday, errs[1].Day)
}

func TestValidateWeek_ClosedDayIsNeverFlagged(t *testing.T) {
	week := DefaultWeek(1)
	week[Sunday].StartTime = "20:00"
	week[Sunday].EndTime = "08:00" // closed, so the window does not matter

	assert.Empty(t, ValidateWeek(week))
}

func TestValidateWeek_ValidSchedule(t *testing.T) {
	assert.Empty(t, ValidateWeek(DefaultWeek(1)))
}
