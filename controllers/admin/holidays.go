package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/utils"
)

func ListHolidays(c *fiber.Ctx) error {
	var holidays []models.Holiday
	if err := db.DB.Order("holiday_date asc").Find(&holidays).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch holidays",
			Error:   err.Error(),
		})
	}
	return c.JSON(holidays)
}

func CreateHoliday(c *fiber.Ctx) error {
	type holidayRequest struct {
		HolidayDate string `json:"holiday_date"`
		Name        string `json:"name"`
	}
	var req holidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	date, err := utils.ParseDate(req.HolidayDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid holiday_date, use YYYY-MM-DD",
		})
	}

	holiday := models.Holiday{HolidayDate: date, Name: req.Name}
	if err := db.DB.Create(&holiday).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to create holiday",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(holiday)
}

func DeleteHoliday(c *fiber.Ctx) error {
	if err := db.DB.Delete(&models.Holiday{}, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete holiday",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
