package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/scheduling"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// StatusFor maps a scheduling error onto an HTTP status. Anything
// outside the booking taxonomy is an internal failure.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, scheduling.ErrForbidden),
		errors.Is(err, scheduling.ErrBlocked):
		return fiber.StatusForbidden
	case errors.Is(err, scheduling.ErrInactive),
		errors.Is(err, scheduling.ErrUnqualified):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, scheduling.ErrSlotUnavailable),
		errors.Is(err, scheduling.ErrConflict),
		errors.Is(err, scheduling.ErrInvalidState),
		errors.Is(err, scheduling.ErrTooLate):
		return fiber.StatusConflict
	case errors.Is(err, scheduling.ErrInvalidArgument):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// SchedulingError writes a scheduling failure as JSON with the mapped
// status code.
func SchedulingError(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(ErrorResponse{
		Message: err.Error(),
	})
}
