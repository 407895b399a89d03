package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/middleware"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/utils"
)

// GetProfile returns the authenticated client's account.
func GetProfile(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, "id = ?", middleware.UserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// UpdateProfile updates name and phone. Email, role and blocked state
// are not client-editable.
func UpdateProfile(c *fiber.Ctx) error {
	type updateProfileRequest struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", middleware.UserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update profile",
			Error:   err.Error(),
		})
	}
	user.Password = ""
	return c.JSON(user)
}
