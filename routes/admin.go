package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/controllers/admin"
	"github.com/nailstudio/booking-api/middleware"
	"github.com/nailstudio/booking-api/models"
)

// SetupAdminRoutes configures the studio back-office endpoints
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/api/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	group.Get("/agenda", admin.GetAgenda)
	group.Post("/agenda/appointments/:id/substitute", admin.SubstituteEmployee)

	group.Get("/employees", admin.ListEmployees)
	group.Get("/employees/:id", admin.GetEmployee)
	group.Post("/employees", admin.CreateEmployee)
	group.Put("/employees/:id", admin.UpdateEmployee)
	group.Delete("/employees/:id", admin.DeleteEmployee)
	group.Get("/employees/:id/availability", admin.GetEmployeeAvailability)
	group.Post("/employees/:id/availability", admin.AddEmployeeAvailability)
	group.Get("/employees/:id/blocks", admin.GetEmployeeBlocks)
	group.Post("/employees/:id/blocks", admin.AddEmployeeBlock)

	group.Get("/services", admin.ListAllServices)
	group.Get("/services/:id", admin.GetService)
	group.Post("/services", admin.CreateService)
	group.Put("/services/:id", admin.UpdateService)
	group.Delete("/services/:id", admin.DeleteService)
	group.Get("/services/:id/options", admin.ListServiceOptions)
	group.Post("/services/:id/options", admin.AddServiceOption)
	group.Put("/services/:id/options/:option_id", admin.UpdateServiceOption)

	group.Get("/users", admin.ListUsers)
	group.Get("/users/:id", admin.GetUser)
	group.Patch("/users/:id/block", admin.SetUserBlocked)

	group.Get("/finance/dashboard", admin.GetFinanceDashboard)
	group.Get("/finance/expenses", admin.ListExpenses)
	group.Post("/finance/expenses", admin.CreateExpense)
	group.Put("/finance/expenses/:id", admin.UpdateExpense)
	group.Delete("/finance/expenses/:id", admin.DeleteExpense)

	group.Get("/holidays", admin.ListHolidays)
	group.Post("/holidays", admin.CreateHoliday)
	group.Delete("/holidays/:id", admin.DeleteHoliday)

	group.Get("/settings", admin.GetSettings)
	group.Put("/settings", admin.UpdateSettings)
}
