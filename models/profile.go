package models

import (
	"math"

	"gorm.io/gorm"
)

// ProfessionalProfile holds the public business card of a professional. The
// completeness score is derived at read time, never stored.
type ProfessionalProfile struct {
	gorm.Model
	ProfessionalID uint   `json:"professional_id" gorm:"uniqueIndex"`
	Professional   User   `json:"-" gorm:"foreignKey:ProfessionalID"`
	BusinessName   string `json:"business_name"`
	Specialty      string `json:"specialty"`
	City           string `json:"city"`
	PriceRange     string `json:"price_range"`
	PhotoURL       string `json:"photo_url"`
}

// Completeness reports which onboarding steps a professional has finished:
// a profile photo, at least one service, at least one available day.
type Completeness struct {
	Profile      bool `json:"profile"`
	Services     bool `json:"services"`
	Availability bool `json:"availability"`
	Percentage   int  `json:"percentage"`
}

func ScoreCompleteness(hasPhoto, hasServices, hasAvailability bool) Completeness {
	done := 0
	for _, step := range []bool{hasPhoto, hasServices, hasAvailability} {
		if step {
			done++
		}
	}
	return Completeness{
		Profile:      hasPhoto,
		Services:     hasServices,
		Availability: hasAvailability,
		Percentage:   int(math.Round(float64(done) / 3 * 100)),
	}
}
