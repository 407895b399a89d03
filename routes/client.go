package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/controllers/client"
	"github.com/nailstudio/booking-api/middleware"
	"github.com/nailstudio/booking-api/models"
)

// SetupClientRoutes configures the authenticated client endpoints
func SetupClientRoutes(app *fiber.App) {
	group := app.Group("/api/client", middleware.Protected(), middleware.RequireRole(models.RoleClient))
	group.Get("/profile", client.GetProfile)
	group.Put("/profile", client.UpdateProfile)
	group.Post("/appointments", client.CreateAppointment)
	group.Get("/appointments", client.ListMyAppointments)
	group.Post("/appointments/:id/cancel", client.CancelAppointment)
}
