package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/controllers"
)

// SetupPublicRoutes configures the unauthenticated catalog and
// availability endpoints
func SetupPublicRoutes(app *fiber.App) {
	public := app.Group("/api/public")
	public.Get("/services", controllers.ListServices)
	public.Get("/employees/by-service/:service_id", controllers.ListEmployeesByService)
	public.Get("/availability", controllers.GetAvailability)
}
