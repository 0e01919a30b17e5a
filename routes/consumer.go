package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tucita/tucita-api/controllers/consumer"
	"github.com/tucita/tucita-api/middleware"
	"github.com/tucita/tucita-api/models"
)

// SetupConsumerRoutes configures public browsing plus the customer-gated
// booking wizard and appointment views.
func SetupConsumerRoutes(app *fiber.App) {
	// Public directory: anyone can browse professionals and their slots.
	app.Get("/professionals", consumer.GetAllProfessionals)
	app.Get("/professionals/:id", consumer.GetProfessionalDetails)
	app.Get("/professionals/:id/slots", consumer.GetSlots)

	customer := app.Group("/customer", middleware.RequireRole(models.RoleCustomer))

	customer.Get("/appointments", consumer.GetAppointments)
	customer.Patch("/appointments/:id/cancel", consumer.CancelAppointment)

	wizard := customer.Group("/booking/:id")
	wizard.Get("/", consumer.GetWizard)
	wizard.Post("/service", consumer.SelectService)
	wizard.Post("/date", consumer.SelectDate)
	wizard.Post("/time", consumer.SelectTime)
	wizard.Post("/confirm", consumer.ConfirmBooking)
}
