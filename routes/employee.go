package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/controllers/employee"
	"github.com/nailstudio/booking-api/middleware"
	"github.com/nailstudio/booking-api/models"
)

// SetupEmployeeRoutes configures the staff self-service endpoints
func SetupEmployeeRoutes(app *fiber.App) {
	group := app.Group("/api/employee", middleware.Protected(), middleware.RequireRole(models.RoleEmployee, models.RoleAdmin))
	group.Get("/me", employee.GetMe)
	group.Get("/agenda", employee.GetMyAgenda)
}
