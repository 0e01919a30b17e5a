package professional

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/utils"
)

// GetWeek returns the professional's weekly schedule, always 7 rules with
// defaults filled in for days that were never saved.
func GetWeek(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	week, err := utils.LoadWeek(userID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to load availability", err)
	}
	return c.JSON(fiber.Map{
		"availability": week,
	})
}

// SaveWeek validates and replaces the whole weekly schedule in one batch.
// Validation failures come back per day so the caller can highlight exactly
// the offending rows.
func SaveWeek(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var payload struct {
		Availability []models.AvailabilityRule `json:"availability"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}

	// Normalize to exactly one rule per weekday before validating.
	week := models.MergeWeek(userID, payload.Availability)
	if dayErrs := models.ValidateWeek(week); len(dayErrs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message":      "Invalid schedule",
			"invalid_days": dayErrs,
		})
	}

	if err := utils.SaveWeek(userID, week); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to save availability", err)
	}

	saved, err := utils.LoadWeek(userID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to reload availability", err)
	}
	return c.JSON(fiber.Map{
		"message":      "Availability saved",
		"availability": saved,
	})
}
