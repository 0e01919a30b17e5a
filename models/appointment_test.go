package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&User{}, &Service{}, &Appointment{}))
	return database
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		ok   bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
	}
	for _, tc := range cases {
		a := &Appointment{Status: tc.from}
		err := a.CanTransition(tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.Error(t, err, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateStatus_WritesOnlyStatus(t *testing.T) {
	database := openTestDB(t)

	a := Appointment{
		CustomerID:     1,
		ProfessionalID: 2,
		ServiceID:      3,
		Date:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Time:           "10:00",
		Price:          25,
		Status:         StatusPending,
	}
	require.NoError(t, database.Create(&a).Error)

	require.NoError(t, a.UpdateStatus(database, StatusConfirmed))

	var reloaded Appointment
	require.NoError(t, database.First(&reloaded, a.ID).Error)
	assert.Equal(t, StatusConfirmed, reloaded.Status)
	assert.Equal(t, 25.0, reloaded.Price)
	assert.Equal(t, "10:00", reloaded.Time)
}

func TestUpdateStatus_RejectsTerminalTransitions(t *testing.T) {
	database := openTestDB(t)

	a := Appointment{CustomerID: 1, ProfessionalID: 2, ServiceID: 3, Status: StatusCancelled}
	require.NoError(t, database.Create(&a).Error)

	assert.Error(t, a.UpdateStatus(database, StatusConfirmed))

	var reloaded Appointment
	require.NoError(t, database.First(&reloaded, a.ID).Error)
	assert.Equal(t, StatusCancelled, reloaded.Status)
}

func TestIsUpcoming_Classification(t *testing.T) {
	today := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return time.Date(2026, 9, 1+offset, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name     string
		date     time.Time
		status   AppointmentStatus
		upcoming bool
	}{
		{"today pending", day(0), StatusPending, true},
		{"today cancelled", day(0), StatusCancelled, false},
		{"yesterday confirmed", day(-1), StatusConfirmed, false},
		{"yesterday pending", day(-1), StatusPending, false},
		{"tomorrow confirmed", day(1), StatusConfirmed, true},
		{"tomorrow cancelled", day(1), StatusCancelled, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := &Appointment{Date: tc.date, Status: tc.status}
			assert.Equal(t, tc.upcoming, a.IsUpcoming(today))
		})
	}
}

func TestBeforeCreate_DefaultsToPending(t *testing.T) {
	database := openTestDB(t)

	a := Appointment{CustomerID: 1, ProfessionalID: 2, ServiceID: 3}
	require.NoError(t, database.Create(&a).Error)
	assert.Equal(t, StatusPending, a.Status)
}
