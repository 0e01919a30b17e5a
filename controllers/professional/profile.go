package professional

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/utils"
)

// GetProfile retrieves the professional's business profile.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.ProfessionalProfile
	if err := db.DB.Where("professional_id = ?", userID).First(&profile).Error; err != nil {
		// If not found, return empty details rather than error
		return c.JSON(fiber.Map{
			"profile": models.ProfessionalProfile{ProfessionalID: userID},
		})
	}
	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

// UpdateProfile upserts the professional's business profile.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	updated := new(models.ProfessionalProfile)
	if err := c.BodyParser(updated); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to parse request body", err)
	}
	updated.ProfessionalID = userID

	var profile models.ProfessionalProfile
	result := db.DB.Where("professional_id = ?", userID).First(&profile)
	if result.RowsAffected > 0 {
		if err := db.DB.Model(&profile).Updates(updated).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "Failed to update profile", err)
		}
	} else {
		if err := db.DB.Create(updated).Error; err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, "Failed to create profile", err)
		}
		profile = *updated
	}

	if err := db.DB.Where("professional_id = ?", userID).First(&profile).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to reload profile", err)
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// UploadPhoto stores a profile photo in the blob store and records its URL.
func UploadPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Photo file is required", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to read photo", err)
	}
	defer file.Close()

	publicID := fmt.Sprintf("professional-%d-%d", userID, time.Now().Unix())
	url, err := utils.UploadProfilePhoto(file, publicID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to upload photo", err)
	}

	if err := db.DB.Model(&models.ProfessionalProfile{}).
		Where("professional_id = ?", userID).
		Update("photo_url", url).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to save photo URL", err)
	}

	return c.JSON(fiber.Map{
		"photo_url": url,
	})
}

// GetCompleteness derives the onboarding completeness score: profile photo,
// at least one service, at least one available day. Computed, never stored.
func GetCompleteness(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.ProfessionalProfile
	hasPhoto := db.DB.Where("professional_id = ?", userID).First(&profile).Error == nil &&
		profile.PhotoURL != ""

	var serviceCount int64
	if err := db.DB.Model(&models.Service{}).
		Where("professional_id = ?", userID).
		Count(&serviceCount).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to check services", err)
	}

	var openDays int64
	if err := db.DB.Model(&models.AvailabilityRule{}).
		Where("professional_id = ? AND is_available = ?", userID, true).
		Count(&openDays).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to check availability", err)
	}

	return c.JSON(models.ScoreCompleteness(hasPhoto, serviceCount > 0, openDays > 0))
}
