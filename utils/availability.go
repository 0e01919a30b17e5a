package utils

import (
	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
	"gorm.io/gorm"
)

// LoadWeek returns exactly 7 availability rules for the professional, one per
// weekday, filling any day missing from the store with defaults.
func LoadWeek(professionalID uint) ([]models.AvailabilityRule, error) {
	var persisted []models.AvailabilityRule
	if err := db.DB.
		Where("professional_id = ?", professionalID).
		Order("day_of_week").
		Find(&persisted).Error; err != nil {
		return nil, err
	}
	return models.MergeWeek(professionalID, persisted), nil
}

// SaveWeek replaces the professional's whole schedule in one transaction:
// delete everything, insert the new 7 rules. The full replace keeps the store
// from ever holding a stale mix of old and new days.
func SaveWeek(professionalID uint, rules []models.AvailabilityRule) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("professional_id = ?", professionalID).
			Delete(&models.AvailabilityRule{}).Error; err != nil {
			return err
		}
		for i := range rules {
			rules[i].ID = 0
			rules[i].ProfessionalID = professionalID
		}
		return tx.Create(&rules).Error
	})
}
