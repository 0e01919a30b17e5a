package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"` // raw claim, normalize via ResolveRole
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Services             []Service          `json:"services,omitempty" gorm:"foreignKey:ProfessionalID"`
	WeeklyAvailability   []AvailabilityRule `json:"weekly_availability,omitempty" gorm:"foreignKey:ProfessionalID"`
	Appointments         []Appointment      `json:"appointments,omitempty" gorm:"foreignKey:ProfessionalID"`
	CustomerAppointments []Appointment      `json:"customer_appointments,omitempty" gorm:"foreignKey:CustomerID"`
}

// CanonicalRole normalizes the stored raw role claim.
func (u *User) CanonicalRole() CanonicalRole {
	return ResolveRole(u.Role)
}
