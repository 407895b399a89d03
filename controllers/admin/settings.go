package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/scheduling"
	"github.com/nailstudio/booking-api/utils"
)

// GetSettings returns the effective studio settings snapshot (stored
// row or defaults).
func GetSettings(c *fiber.Ctx) error {
	return c.JSON(scheduling.Default.Settings(c.UserContext()))
}

// UpdateSettings upserts the single settings row and drops the cached
// snapshot so the next availability computation sees the change.
func UpdateSettings(c *fiber.Ctx) error {
	type settingsRequest struct {
		SlotMinutes   *int    `json:"slot_minutes"`
		BufferMinutes *int    `json:"buffer_minutes"`
		Timezone      *string `json:"timezone"`
	}
	var req settingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if req.SlotMinutes != nil && *req.SlotMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "slot_minutes must be positive",
		})
	}
	if req.BufferMinutes != nil && *req.BufferMinutes < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "buffer_minutes must not be negative",
		})
	}

	var row models.StudioSettings
	err := db.DB.Order("created_at asc").First(&row).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load settings",
			Error:   err.Error(),
		})
	}
	if req.SlotMinutes != nil {
		row.SlotMinutes = *req.SlotMinutes
	}
	if req.BufferMinutes != nil {
		row.BufferMinutes = *req.BufferMinutes
	}
	if req.Timezone != nil {
		row.Timezone = *req.Timezone
	}
	if err := db.DB.Save(&row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save settings",
			Error:   err.Error(),
		})
	}

	scheduling.Default.InvalidateSettings(c.UserContext())
	return c.JSON(row)
}
