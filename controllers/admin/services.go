package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/utils"
)

func ListAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Preload("Options").Order("name asc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	var service models.Service
	if err := db.DB.Preload("Options").First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}
	return c.JSON(service)
}

type serviceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int    `json:"price_cents"`
	DurationMin *int    `json:"duration_min"`
	DurationMax *int    `json:"duration_max"`
	Active      *bool   `json:"active"`
}

func CreateService(c *fiber.Ctx) error {
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if req.Name == nil || req.PriceCents == nil || req.DurationMin == nil || req.DurationMax == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name, price_cents, duration_min and duration_max are required",
		})
	}
	if *req.DurationMin > *req.DurationMax {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "duration_min must not exceed duration_max",
		})
	}

	service := models.Service{
		Name:        *req.Name,
		PriceCents:  *req.PriceCents,
		DurationMin: *req.DurationMin,
		DurationMax: *req.DurationMax,
		Active:      true,
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	var service models.Service
	if err := db.DB.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.PriceCents != nil {
		service.PriceCents = *req.PriceCents
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.DurationMax != nil {
		service.DurationMax = *req.DurationMax
	}
	if req.Active != nil {
		service.Active = *req.Active
	}
	if service.DurationMin > service.DurationMax {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "duration_min must not exceed duration_max",
		})
	}
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	if err := db.DB.Delete(&models.Service{}, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ListServiceOptions(c *fiber.Ctx) error {
	var options []models.ServiceOption
	err := db.DB.Where("service_id = ?", c.Params("id")).Order("name asc").Find(&options).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch options",
			Error:   err.Error(),
		})
	}
	return c.JSON(options)
}

func AddServiceOption(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service id",
		})
	}
	var service models.Service
	if err := db.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	option := new(models.ServiceOption)
	if err := c.BodyParser(option); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	option.ID = uuid.Nil
	option.ServiceID = serviceID
	option.Active = true
	if err := db.DB.Create(option).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create option",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(option)
}

func UpdateServiceOption(c *fiber.Ctx) error {
	var option models.ServiceOption
	err := db.DB.First(&option, "id = ? AND service_id = ?", c.Params("option_id"), c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Option not found",
		})
	}

	type optionRequest struct {
		Name             *string `json:"name"`
		PriceDeltaCents  *int    `json:"price_delta_cents"`
		DurationDeltaMin *int    `json:"duration_delta_min"`
		Active           *bool   `json:"active"`
	}
	var req optionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if req.Name != nil {
		option.Name = *req.Name
	}
	if req.PriceDeltaCents != nil {
		option.PriceDeltaCents = *req.PriceDeltaCents
	}
	if req.DurationDeltaMin != nil {
		option.DurationDeltaMin = *req.DurationDeltaMin
	}
	if req.Active != nil {
		option.Active = *req.Active
	}
	if err := db.DB.Save(&option).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update option",
			Error:   err.Error(),
		})
	}
	return c.JSON(option)
}
