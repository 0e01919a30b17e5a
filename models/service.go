package models

import (
	"gorm.io/gorm"
)

// Service is a bookable offering, exclusively owned by one professional.
// Appointments snapshot its price and duration at creation, so editing or
// deleting a service never rewrites history.
type Service struct {
	gorm.Model
	ProfessionalID  uint    `json:"professional_id" gorm:"index"`
	Professional    User    `json:"-" gorm:"foreignKey:ProfessionalID"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Validate returns field-scoped problems, empty when the service is sound.
func (s *Service) Validate() map[string]string {
	problems := make(map[string]string)
	if s.Name == "" {
		problems["name"] = "name is required"
	}
	if s.Price < 0 {
		problems["price"] = "price cannot be negative"
	}
	if s.DurationMinutes <= 0 {
		problems["duration_minutes"] = "duration must be positive"
	}
	return problems
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.Category == "" {
		s.Category = "General"
	}
	return nil
}
