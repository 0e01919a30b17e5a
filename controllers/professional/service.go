package professional

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/utils"
)

// GetServices lists the logged-in professional's catalog.
func GetServices(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var services []models.Service
	if err := db.DB.
		Where("professional_id = ?", userID).
		Order("created_at desc").
		Find(&services).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to fetch services", err)
	}
	return c.JSON(services)
}

// CreateService adds a service to the catalog after field validation; no
// store call happens for an invalid payload.
func CreateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	service.ID = 0
	service.ProfessionalID = userID

	if problems := service.Validate(); len(problems) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid service",
			"fields":  problems,
		})
	}

	if err := db.DB.Create(service).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to create service", err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService edits an owned service. Existing appointments keep the price
// and duration they were booked with.
func UpdateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid service ID", err)
	}

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "Service not found", err)
	}
	if service.ProfessionalID != userID {
		return utils.Fail(c, fiber.StatusForbidden, "You can only update your own services", nil)
	}

	if err := c.BodyParser(&service); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	service.ID = uint(id)
	service.ProfessionalID = userID

	if problems := service.Validate(); len(problems) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid service",
			"fields":  problems,
		})
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to update service", err)
	}
	return c.JSON(service)
}

// DeleteService removes an owned service from the catalog. Appointments that
// reference it are untouched.
func DeleteService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid service ID", err)
	}

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "Service not found", err)
	}
	if service.ProfessionalID != userID {
		return utils.Fail(c, fiber.StatusForbidden, "You can only delete your own services", nil)
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to delete service", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
