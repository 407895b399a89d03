package employee

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/middleware"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/scheduling"
	"github.com/nailstudio/booking-api/utils"
)

// GetMe returns the employee record linked to the authenticated user.
func GetMe(c *fiber.Ctx) error {
	var me models.Employee
	err := db.DB.Preload("Services").First(&me, "user_id = ?", middleware.UserID(c)).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "No employee record for this account",
		})
	}
	return c.JSON(me)
}

// GetMyAgenda returns the employee's confirmed appointments for a day.
func GetMyAgenda(c *fiber.Ctx) error {
	var me models.Employee
	if err := db.DB.First(&me, "user_id = ?", middleware.UserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "No employee record for this account",
		})
	}
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date format, use YYYY-MM-DD",
		})
	}

	appointments, err := scheduling.Default.AppointmentsByEmployeeForDay(c.UserContext(), me.ID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch agenda",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}
