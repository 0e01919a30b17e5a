package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment records a customer's reservation of a professional's time.
// Price is copied from the service at creation and never updated afterwards.
type Appointment struct {
	gorm.Model
	CustomerID     uint              `json:"customer_id" gorm:"index"`
	Customer       User              `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProfessionalID uint              `json:"professional_id" gorm:"index"`
	Professional   User              `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	ServiceID      uint              `json:"service_id"`
	Service        Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Date           time.Time         `json:"date"` // calendar date, midnight
	Time           string            `json:"time"` // "HH:MM", 24h
	Price          float64           `json:"price"`
	Status         AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// CanTransition checks the status state machine:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//	cancelled, completed: terminal
func (a *Appointment) CanTransition(to AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if to != StatusConfirmed && to != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", to)
		}
	case StatusConfirmed:
		if to != StatusCompleted && to != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", to)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	default:
		return fmt.Errorf("unknown status %q", a.Status)
	}
	return nil
}

// UpdateStatus applies a transition, writing only the status column. Price,
// service and date are never touched by a status change.
func (a *Appointment) UpdateStatus(tx *gorm.DB, to AppointmentStatus) error {
	if err := a.CanTransition(to); err != nil {
		return err
	}
	if err := tx.Model(a).Update("status", to).Error; err != nil {
		return err
	}
	a.Status = to
	return nil
}

// IsUpcoming classifies the appointment at read time: upcoming means the date
// is today or later and the appointment was not cancelled. Past-dated pending
// appointments and all cancelled ones are history. Never stored.
func (a *Appointment) IsUpcoming(today time.Time) bool {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return !a.Date.Before(day) && a.Status != StatusCancelled
}
