package consumer

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/notify"
	"github.com/tucita/tucita-api/utils"
)

// GetAppointments lists the customer's appointments split into upcoming and
// history. The split is derived at read time: upcoming means date >= today
// and not cancelled; past-dated pending and every cancelled appointment fall
// into history.
func GetAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var appointments []models.Appointment
	if err := db.DB.
		Preload("Service").
		Preload("Professional").
		Where("customer_id = ?", userID).
		Order("date desc, time desc").
		Find(&appointments).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to fetch appointments", err)
	}

	now := time.Now()
	upcoming := []models.Appointment{}
	history := []models.Appointment{}
	for _, a := range appointments {
		a.Professional.Password = ""
		if a.IsUpcoming(now) {
			upcoming = append(upcoming, a)
		} else {
			history = append(history, a)
		}
	}

	return c.JSON(fiber.Map{
		"upcoming": upcoming,
		"history":  history,
	})
}

// CancelAppointment lets the customer cancel their own pending or confirmed
// appointment.
func CancelAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid appointment ID", err)
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Professional").Preload("Service").
		First(&appointment, appointmentID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "Appointment not found", err)
	}
	if appointment.CustomerID != userID {
		return utils.Fail(c, fiber.StatusForbidden, "You can only cancel your own appointments", nil)
	}

	if err := appointment.CanTransition(models.StatusCancelled); err != nil {
		return utils.Fail(c, fiber.StatusConflict, err.Error(), nil)
	}

	if err := utils.WithRetry(3, 200*time.Millisecond, func() error {
		return appointment.UpdateStatus(db.DB, models.StatusCancelled)
	}); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to cancel appointment", err)
	}

	notify.Emit(notify.Event{
		Type:          notify.EventCancelled,
		AppointmentID: appointment.ID,
		TargetContact: appointment.Professional.Email,
		TemplateData: map[string]string{
			"recipient_name": appointment.Professional.Name,
			"service_name":   appointment.Service.Name,
			"date":           appointment.Date.Format(utils.DateLayout),
			"time":           appointment.Time,
		},
	})

	return c.JSON(fiber.Map{
		"message":     "Appointment cancelled",
		"appointment": appointment,
	})
}
