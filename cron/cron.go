package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/utils"
)

// StartCronJobs starts the administrative sweeper that completes confirmed
// appointments once their date has passed. Completion never happens through
// the API; this job is the only writer of that transition.
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", completePastAppointments)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment completion")
}

func completePastAppointments() {
	today := utils.Midnight(time.Now())

	var appointments []models.Appointment
	err := db.DB.
		Where("status = ? AND date < ?", models.StatusConfirmed, today).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for completion: %v", err)
		return
	}

	for i := range appointments {
		if err := appointments[i].UpdateStatus(db.DB, models.StatusCompleted); err != nil {
			log.Printf("Failed to complete appointment %d: %v", appointments[i].ID, err)
			continue
		}
		log.Printf("Completed appointment %d", appointments[i].ID)
	}
}
