package client

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nailstudio/booking-api/middleware"
	"github.com/nailstudio/booking-api/scheduling"
	"github.com/nailstudio/booking-api/utils"
)

type createAppointmentRequest struct {
	EmployeeID uuid.UUID   `json:"employee_id"`
	ServiceID  uuid.UUID   `json:"service_id"`
	Date       string      `json:"date"`       // "YYYY-MM-DD"
	StartTime  string      `json:"start_time"` // "HH:MM"
	OptionIDs  []uuid.UUID `json:"option_ids"`
}

// CreateAppointment books a slot for the authenticated client.
func CreateAppointment(c *fiber.Ctx) error {
	var req createAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date format, use YYYY-MM-DD",
		})
	}

	appointment, err := scheduling.Default.CreateAppointment(
		c.UserContext(),
		middleware.UserID(c),
		req.EmployeeID,
		req.ServiceID,
		date,
		req.StartTime,
		req.OptionIDs,
	)
	if err != nil {
		return utils.SchedulingError(c, err)
	}

	// Best effort: a failed mail must not undo a committed booking.
	go sendConfirmationEmail(appointment.ClientEmail, appointment.ClientName,
		utils.FormatDate(appointment.AppointmentDate), appointment.StartTime)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// ListMyAppointments returns the client's appointments in a date range.
func ListMyAppointments(c *fiber.Ctx) error {
	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid from date, use YYYY-MM-DD",
		})
	}
	to, err := utils.ParseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid to date, use YYYY-MM-DD",
		})
	}

	appointments, err := scheduling.Default.AppointmentsByClient(c.UserContext(), middleware.UserID(c), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// CancelAppointment cancels the client's own appointment, subject to
// the cancellation cutoff.
func CancelAppointment(c *fiber.Ctx) error {
	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment id",
		})
	}
	if err := scheduling.Default.CancelByClient(c.UserContext(), appointmentID, middleware.UserID(c)); err != nil {
		return utils.SchedulingError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sendConfirmationEmail(to, name, date, start string) {
	if to == "" {
		return
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been confirmed.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Best regards,<br>The Studio Team</p>
	`, name, date, start)
	if err := utils.SendEmail(to, "Appointment Confirmation", body); err != nil {
		log.Warn().Err(err).Str("to", to).Msg("failed to send confirmation email")
	}
}
