package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nailstudio/booking-api/middleware"
	"github.com/nailstudio/booking-api/scheduling"
	"github.com/nailstudio/booking-api/utils"
)

// GetAgenda lists a day's appointments, optionally filtered by
// employee.
func GetAgenda(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date format, use YYYY-MM-DD",
		})
	}
	var employeeID *uuid.UUID
	if raw := c.Query("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid employee id",
			})
		}
		employeeID = &id
	}

	appointments, err := scheduling.Default.AgendaForDay(c.UserContext(), date, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch agenda",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// SubstituteEmployee reassigns an appointment to another employee,
// recording the acting admin in the audit trail.
func SubstituteEmployee(c *fiber.Ctx) error {
	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment id",
		})
	}
	type substituteRequest struct {
		NewEmployeeID uuid.UUID `json:"new_employee_id"`
	}
	var req substituteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}

	appointment, err := scheduling.Default.SubstituteEmployee(
		c.UserContext(), appointmentID, req.NewEmployeeID, middleware.Identity(c))
	if err != nil {
		return utils.SchedulingError(c, err)
	}
	return c.JSON(appointment)
}
