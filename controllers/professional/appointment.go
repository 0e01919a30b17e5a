package professional

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/notify"
	"github.com/tucita/tucita-api/utils"
)

// GetAppointments lists the professional's appointments, newest date first.
// The shape matches the customer listing; only the filter column differs.
func GetAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var appointments []models.Appointment
	if err := db.DB.
		Preload("Service").
		Preload("Customer").
		Where("professional_id = ?", userID).
		Order("date desc, time desc").
		Find(&appointments).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to fetch appointments", err)
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// UpdateAppointmentStatus lets the professional confirm or cancel an owned
// appointment. Completion is reserved for the administrative sweeper, so it
// is rejected here. The transition writes only the status column.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid appointment ID", err)
	}

	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}

	newStatus := models.AppointmentStatus(updateData.Status)
	if newStatus != models.StatusConfirmed && newStatus != models.StatusCancelled {
		return utils.Fail(c, fiber.StatusBadRequest,
			"Invalid status. Must be 'confirmed' or 'cancelled'.", nil)
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Customer").Preload("Service").
		First(&appointment, appointmentID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "Appointment not found", err)
	}
	if appointment.ProfessionalID != userID {
		return utils.Fail(c, fiber.StatusForbidden, "You can only update your own appointments", nil)
	}

	if err := appointment.CanTransition(newStatus); err != nil {
		return utils.Fail(c, fiber.StatusConflict, err.Error(), nil)
	}

	if err := utils.WithRetry(3, 200*time.Millisecond, func() error {
		return appointment.UpdateStatus(db.DB, newStatus)
	}); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to update appointment", err)
	}

	// Best-effort customer notification, independent of the response.
	eventType := notify.EventConfirmed
	if newStatus == models.StatusCancelled {
		eventType = notify.EventCancelled
	}
	notify.Emit(notify.Event{
		Type:          eventType,
		AppointmentID: appointment.ID,
		TargetContact: appointment.Customer.Email,
		TemplateData: map[string]string{
			"recipient_name": appointment.Customer.Name,
			"service_name":   appointment.Service.Name,
			"date":           appointment.Date.Format(utils.DateLayout),
			"time":           appointment.Time,
		},
	})

	return c.JSON(fiber.Map{
		"message":     "Appointment status updated successfully",
		"appointment": appointment,
	})
}
