package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/scheduling"
	"github.com/nailstudio/booking-api/utils"
)

// ListServices returns the active catalog with active options.
func ListServices(c *fiber.Ctx) error {
	var services []models.Service
	err := db.DB.Preload("Options", "active = ?", true).
		Where("active = ?", true).
		Order("name asc").
		Find(&services).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// ListEmployeesByService returns active employees qualified for a
// service.
func ListEmployeesByService(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("service_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service id",
		})
	}

	var employees []models.Employee
	err = db.DB.
		Joins("JOIN employee_services es ON es.employee_id = employees.id").
		Where("es.service_id = ? AND employees.active = ?", serviceID, true).
		Order("employees.full_name asc").
		Find(&employees).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch employees",
			Error:   err.Error(),
		})
	}
	return c.JSON(employees)
}

// GetAvailability returns the bookable "HH:MM" start times for an
// employee, service and date. The list is advisory; booking re-checks.
func GetAvailability(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid employee id",
		})
	}
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service id",
		})
	}
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date format, use YYYY-MM-DD",
		})
	}

	slots, err := scheduling.Default.AvailableSlots(c.UserContext(), employeeID, serviceID, date)
	if err != nil {
		return utils.SchedulingError(c, err)
	}
	return c.JSON(fiber.Map{"slots": slots})
}
