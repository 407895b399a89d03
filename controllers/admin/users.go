package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/utils"
)

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Order("full_name asc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// SetUserBlocked toggles whether a client may book at all.
func SetUserBlocked(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	type blockRequest struct {
		Blocked bool `json:"blocked"`
	}
	var req blockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if err := db.DB.Model(&user).Update("blocked", req.Blocked).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update user",
			Error:   err.Error(),
		})
	}
	user.Blocked = req.Blocked
	user.Password = ""
	return c.JSON(user)
}
