package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
)

func openTestDB(t *testing.T) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(
		&models.User{},
		&models.AvailabilityRule{},
		&models.Service{},
		&models.Appointment{},
	))
	db.DB = database
}

func TestLoadWeek_AlwaysReturnsSevenRules(t *testing.T) {
	openTestDB(t)

	// Nothing persisted yet: the default week applies.
	week, err := LoadWeek(1)
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.True(t, week[models.Monday].IsAvailable)
	assert.False(t, week[models.Sunday].IsAvailable)

	// A single persisted day still yields 7 rules.
	require.NoError(t, db.DB.Create(&models.AvailabilityRule{
		ProfessionalID: 1,
		DayOfWeek:      models.Wednesday,
		IsAvailable:    true,
		StartTime:      "08:00",
		EndTime:        "12:00",
	}).Error)

	week, err = LoadWeek(1)
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, "08:00", week[models.Wednesday].StartTime)
	assert.False(t, week[models.Monday].IsAvailable, "unsaved weekday is closed once a schedule exists")
}

func TestSaveWeek_RoundTrip(t *testing.T) {
	openTestDB(t)

	week := models.DefaultWeek(1)
	week[models.Saturday].IsAvailable = true
	week[models.Saturday].StartTime = "10:00"
	week[models.Saturday].EndTime = "13:00"
	week[models.Monday].IsAvailable = false

	require.NoError(t, SaveWeek(1, week))

	loaded, err := LoadWeek(1)
	require.NoError(t, err)
	require.Len(t, loaded, 7)
	for d := models.Sunday; d <= models.Saturday; d++ {
		assert.Equal(t, week[d].IsAvailable, loaded[d].IsAvailable, "day %s", d)
		assert.Equal(t, week[d].StartTime, loaded[d].StartTime, "day %s", d)
		assert.Equal(t, week[d].EndTime, loaded[d].EndTime, "day %s", d)
	}
}

func TestSaveWeek_ReplacesWholeSchedule(t *testing.T) {
	openTestDB(t)

	first := models.DefaultWeek(1)
	require.NoError(t, SaveWeek(1, first))

	second := models.DefaultWeek(1)
	for d := range second {
		second[d].IsAvailable = false
	}
	second[models.Tuesday].IsAvailable = true
	require.NoError(t, SaveWeek(1, second))

	var count int64
	require.NoError(t, db.DB.Model(&models.AvailabilityRule{}).
		Where("professional_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(7), count, "old rows must not accumulate")

	loaded, err := LoadWeek(1)
	require.NoError(t, err)
	assert.True(t, loaded[models.Tuesday].IsAvailable)
	assert.False(t, loaded[models.Monday].IsAvailable)
}

func TestSlotsForDate_MondayOnlySchedule(t *testing.T) {
	openTestDB(t)

	week := models.DefaultWeek(1)
	for d := range week {
		week[d].IsAvailable = false
	}
	week[models.Monday].IsAvailable = true
	week[models.Monday].StartTime = "09:00"
	week[models.Monday].EndTime = "18:00"
	require.NoError(t, SaveWeek(1, week))

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())
	tuesday := monday.AddDate(0, 0, 1)

	slots, err := SlotsForDate(1, monday, 60*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0])
	assert.Len(t, slots, 9) // 09:00 .. 17:00 hourly, 18:00 excluded

	slots, err = SlotsForDate(1, tuesday, 60*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlotsForDate_StepFollowsDuration(t *testing.T) {
	openTestDB(t)

	week := models.DefaultWeek(1)
	week[models.Friday].StartTime = "09:00"
	week[models.Friday].EndTime = "11:00"
	require.NoError(t, SaveWeek(1, week))

	friday := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Friday, friday.Weekday())

	slots, err := SlotsForDate(1, friday, 45*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:45", "10:30"}, slots)
}
