package db

import (
	"log"

	"github.com/tucita/tucita-api/models"
)

// Migrate connects and applies the schema for every persisted model.
func Migrate() {
	Init()

	err := DB.AutoMigrate(
		&models.User{},
		&models.ProfessionalProfile{},
		&models.AvailabilityRule{},
		&models.Service{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("failed to run migrations: ", err)
	}

	log.Println("migrations applied")
}
