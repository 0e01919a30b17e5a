package consumer

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/utils"
)

// GetAllProfessionals returns the public professional directory.
func GetAllProfessionals(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	// Raw role synonyms live in the users table; match them all.
	roleClaims := models.ClaimsFor(models.RoleProfessional)

	var professionals []models.User
	if err := db.DB.
		Where("role IN ?", roleClaims).
		Limit(limit).
		Offset(offset).
		Find(&professionals).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to fetch professionals", err)
	}
	for i := range professionals {
		professionals[i].Password = ""
	}

	var count int64
	db.DB.Model(&models.User{}).Where("role IN ?", roleClaims).Count(&count)

	return c.JSON(fiber.Map{
		"professionals": professionals,
		"total":         count,
		"page":          page,
		"limit":         limit,
		"pages":         (int(count) + limit - 1) / limit,
	})
}

// GetProfessionalDetails returns one professional with profile, catalog and
// weekly schedule.
func GetProfessionalDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid professional ID", err)
	}

	var user models.User
	if err := db.DB.Preload("Services").First(&user, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, "Professional not found", err)
	}
	if user.CanonicalRole() != models.RoleProfessional {
		return utils.Fail(c, fiber.StatusNotFound, "Professional not found", nil)
	}
	user.Password = ""

	var profile models.ProfessionalProfile
	db.DB.Where("professional_id = ?", id).First(&profile)

	week, err := utils.LoadWeek(uint(id))
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to load availability", err)
	}

	return c.JSON(fiber.Map{
		"professional": user,
		"profile":      profile,
		"availability": week,
	})
}

// GetSlots returns candidate start times for one professional on one date.
// A closed day yields an empty list. The step follows the service duration
// when a service is given.
func GetSlots(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid professional ID", err)
	}

	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid or missing date", err)
	}

	step := utils.DefaultSlotStep
	if serviceID := c.QueryInt("service_id"); serviceID > 0 {
		var service models.Service
		if err := db.DB.First(&service, serviceID).Error; err == nil &&
			service.ProfessionalID == uint(id) && service.DurationMinutes > 0 {
			step = time.Duration(service.DurationMinutes) * time.Minute
		}
	}

	slots, err := utils.SlotsForDate(uint(id), date, step)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to compute slots", err)
	}

	return c.JSON(fiber.Map{
		"date":  date.Format(utils.DateLayout),
		"slots": slots,
	})
}
