package consumer

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/booking"
	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/notify"
	"github.com/tucita/tucita-api/utils"
)

// loadWizard fetches the caller's wizard for the professional in the URL,
// creating a fresh one when none exists.
func loadWizard(c *fiber.Ctx) (*booking.Wizard, error) {
	userID := c.Locals("userID").(uint)
	professionalID, err := c.ParamsInt("id")
	if err != nil {
		return nil, err
	}
	w, err := booking.Sessions.Get(c.Context(), userID, uint(professionalID))
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = booking.New(userID, uint(professionalID))
	}
	return w, nil
}

// GetWizard returns the current wizard state plus the 14-day date strip.
func GetWizard(c *fiber.Ctx) error {
	w, err := loadWizard(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to load booking state", err)
	}
	return c.JSON(fiber.Map{
		"wizard": w,
		"dates":  booking.DateStrip(time.Now()),
	})
}

// SelectService records the chosen service, snapshotting its price and
// duration into the wizard.
func SelectService(c *fiber.Ctx) error {
	w, err := loadWizard(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to load booking state", err)
	}

	var payload struct {
		ServiceID uint `json:"service_id"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}

	var service models.Service
	if err := db.DB.First(&service, payload.ServiceID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "Service not found", err)
	}
	if service.ProfessionalID != w.ProfessionalID {
		return utils.Fail(c, fiber.StatusUnprocessableEntity,
			"Service does not belong to this professional", nil)
	}

	w.SelectService(service)
	if err := booking.Sessions.Put(c.Context(), w); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to save booking state", err)
	}
	return c.JSON(fiber.Map{"wizard": w})
}

// SelectDate records the chosen date. Picking a new date drops a previously
// chosen time.
func SelectDate(c *fiber.Ctx) error {
	w, err := loadWizard(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to load booking state", err)
	}

	var payload struct {
		Date string `json:"date"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	if err := w.SelectDate(payload.Date); err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	if err := booking.Sessions.Put(c.Context(), w); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to save booking state", err)
	}
	return c.JSON(fiber.Map{"wizard": w})
}

// SelectTime records the chosen start time.
func SelectTime(c *fiber.Ctx) error {
	w, err := loadWizard(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to load booking state", err)
	}

	var payload struct {
		Time string `json:"time"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	if w.Date == "" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "Select a date first", nil)
	}
	if err := w.SelectTime(payload.Time); err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	if err := booking.Sessions.Put(c.Context(), w); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to save booking state", err)
	}
	return c.JSON(fiber.Map{"wizard": w})
}

// ConfirmBooking submits the wizard. Missing selections fail locally with no
// store call; on success the appointment is created with the snapshotted
// price and a best-effort notification goes to the professional.
func ConfirmBooking(c *fiber.Ctx) error {
	w, err := loadWizard(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to load booking state", err)
	}

	if problems := w.Validate(); len(problems) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Booking is incomplete",
			"fields":  problems,
		})
	}

	date, err := utils.ParseDate(w.Date)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	appointment := models.Appointment{
		CustomerID:     w.CustomerID,
		ProfessionalID: w.ProfessionalID,
		ServiceID:      w.ServiceID,
		Date:           date,
		Time:           w.Time,
		Price:          w.Price, // snapshot taken at service selection
		Status:         models.StatusPending,
	}

	if err := utils.WithRetry(3, 200*time.Millisecond, func() error {
		return db.DB.Create(&appointment).Error
	}); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError,
			"There was a problem creating your appointment. Please try again.", err)
	}

	w.Complete()
	if err := booking.Sessions.Delete(c.Context(), w.CustomerID, w.ProfessionalID); err != nil {
		// The booking already exists; a leftover wizard only costs its TTL.
		c.Context().Logger().Printf("failed to clear wizard: %v", err)
	}

	var professionalUser models.User
	if err := db.DB.First(&professionalUser, w.ProfessionalID).Error; err == nil {
		var customer models.User
		db.DB.First(&customer, w.CustomerID)
		notify.Emit(notify.Event{
			Type:          notify.EventCreated,
			AppointmentID: appointment.ID,
			TargetContact: professionalUser.Email,
			TemplateData: map[string]string{
				"recipient_name": professionalUser.Name,
				"customer_name":  customer.Name,
				"service_name":   w.ServiceName,
				"date":           w.Date,
				"time":           w.Time,
			},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Booking confirmed",
		"appointment": appointment,
		"wizard":      w,
	})
}
