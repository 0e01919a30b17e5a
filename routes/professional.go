package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/controllers/professional"
	"github.com/tucita/tucita-api/middleware"
	"github.com/tucita/tucita-api/models"
)

// SetupProfessionalRoutes configures the professional workspace: schedule,
// catalog, profile and appointment management. Every route sits behind the
// professional gate.
func SetupProfessionalRoutes(app *fiber.App) {
	pro := app.Group("/professional", middleware.RequireRole(models.RoleProfessional))

	pro.Get("/availability", professional.GetWeek)
	pro.Put("/availability", professional.SaveWeek)

	pro.Get("/services", professional.GetServices)
	pro.Post("/services", professional.CreateService)
	pro.Patch("/services/:id", professional.UpdateService)
	pro.Delete("/services/:id", professional.DeleteService)

	pro.Get("/profile", professional.GetProfile)
	pro.Patch("/profile", professional.UpdateProfile)
	pro.Post("/profile/photo", professional.UploadPhoto)
	pro.Get("/profile/completeness", professional.GetCompleteness)

	pro.Get("/appointments", professional.GetAppointments)
	pro.Patch("/appointments/:id/status", professional.UpdateAppointmentStatus)
}
