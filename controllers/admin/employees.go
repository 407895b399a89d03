package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/utils"
)

// ListEmployees returns all employees including inactive ones.
func ListEmployees(c *fiber.Ctx) error {
	var employees []models.Employee
	if err := db.DB.Preload("Services").Order("full_name asc").Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch employees",
			Error:   err.Error(),
		})
	}
	return c.JSON(employees)
}

func GetEmployee(c *fiber.Ctx) error {
	var employee models.Employee
	if err := db.DB.Preload("Services").First(&employee, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
		})
	}
	return c.JSON(employee)
}

type employeeRequest struct {
	FullName   *string     `json:"full_name"`
	Email      *string     `json:"email"`
	Phone      *string     `json:"phone"`
	Active     *bool       `json:"active"`
	UserID     *uuid.UUID  `json:"user_id"`
	ServiceIDs []uuid.UUID `json:"service_ids"`
}

func CreateEmployee(c *fiber.Ctx) error {
	var req employeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if req.FullName == nil || *req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "full_name is required",
		})
	}

	employee := models.Employee{FullName: *req.FullName, Active: true, UserID: req.UserID}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if err := db.DB.Create(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create employee",
			Error:   err.Error(),
		})
	}
	if len(req.ServiceIDs) > 0 {
		if err := replaceServices(&employee, req.ServiceIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to assign services",
				Error:   err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

func UpdateEmployee(c *fiber.Ctx) error {
	var employee models.Employee
	if err := db.DB.First(&employee, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
		})
	}
	var req employeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}
	if req.UserID != nil {
		employee.UserID = req.UserID
	}
	if err := db.DB.Save(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update employee",
			Error:   err.Error(),
		})
	}
	if req.ServiceIDs != nil {
		if err := replaceServices(&employee, req.ServiceIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to assign services",
				Error:   err.Error(),
			})
		}
	}
	return c.JSON(employee)
}

func DeleteEmployee(c *fiber.Ctx) error {
	if err := db.DB.Delete(&models.Employee{}, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete employee",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// replaceServices swaps the employee's qualification set. Unknown ids
// are ignored.
func replaceServices(employee *models.Employee, serviceIDs []uuid.UUID) error {
	var services []models.Service
	if err := db.DB.Where("id IN ?", serviceIDs).Find(&services).Error; err != nil {
		return err
	}
	return db.DB.Model(employee).Association("Services").Replace(services)
}

// GetEmployeeAvailability lists the weekly recurring windows.
func GetEmployeeAvailability(c *fiber.Ctx) error {
	var rows []models.WeeklyAvailability
	err := db.DB.Where("employee_id = ?", c.Params("id")).
		Order("day_of_week asc, start_time asc").
		Find(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(rows)
}

// AddEmployeeAvailability appends one weekly window. DayOfWeek uses the
// store convention 1=Sunday..7=Saturday.
func AddEmployeeAvailability(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid employee id",
		})
	}
	var employee models.Employee
	if err := db.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
		})
	}

	row := new(models.WeeklyAvailability)
	if err := c.BodyParser(row); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if row.DayOfWeek < 1 || row.DayOfWeek > 7 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "day_of_week must be 1 (Sunday) through 7 (Saturday)",
		})
	}
	row.EmployeeID = employeeID
	if err := db.DB.Create(row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create availability",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// GetEmployeeBlocks lists ad-hoc blocks, optionally for one date.
func GetEmployeeBlocks(c *fiber.Ctx) error {
	q := db.DB.Where("employee_id = ?", c.Params("id"))
	if raw := c.Query("date"); raw != "" {
		date, err := utils.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date format, use YYYY-MM-DD",
			})
		}
		q = q.Where("block_date = ?", date)
	}
	var blocks []models.EmployeeBlock
	if err := q.Order("block_date asc, start_time asc").Find(&blocks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch blocks",
			Error:   err.Error(),
		})
	}
	return c.JSON(blocks)
}

// AddEmployeeBlock registers an ad-hoc unavailable interval for one
// date.
func AddEmployeeBlock(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid employee id",
		})
	}
	var employee models.Employee
	if err := db.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
		})
	}

	type blockRequest struct {
		BlockDate string `json:"block_date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Reason    string `json:"reason"`
	}
	var req blockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	date, err := utils.ParseDate(req.BlockDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid block_date, use YYYY-MM-DD",
		})
	}

	block := models.EmployeeBlock{
		EmployeeID: employeeID,
		BlockDate:  date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
	}
	if err := db.DB.Create(&block).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create block",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(block)
}
