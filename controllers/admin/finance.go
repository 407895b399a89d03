package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/scheduling"
	"github.com/nailstudio/booking-api/utils"
)

// FinanceDashboard is the period roll-up: confirmed revenue minus
// losses and expenses. Pure aggregation, no temporal algebra.
type FinanceDashboard struct {
	RevenueCents           int64 `json:"revenue_cents"`
	CancellationLossCents  int64 `json:"cancellation_loss_cents"`
	NoShowLossCents        int64 `json:"no_show_loss_cents"`
	FixedExpenseCents      int64 `json:"fixed_expense_cents"`
	VariableExpenseCents   int64 `json:"variable_expense_cents"`
	MaterialsExpenseCents  int64 `json:"materials_expense_cents"`
	EmployeesExpenseCents  int64 `json:"employees_expense_cents"`
	OtherExpenseCents      int64 `json:"other_expense_cents"`
	TotalExpenseCents      int64 `json:"total_expense_cents"`
	ProfitCents            int64 `json:"profit_cents"`
}

func GetFinanceDashboard(c *fiber.Ctx) error {
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start date, use YYYY-MM-DD",
		})
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid end date, use YYYY-MM-DD",
		})
	}

	var dash FinanceDashboard
	sumByStatus := func(status models.AppointmentStatus) (int64, error) {
		var total int64
		err := db.DB.Model(&models.Appointment{}).
			Where("appointment_date BETWEEN ? AND ? AND status = ?",
				scheduling.DateOnly(start), scheduling.DateOnly(end), status).
			Select("COALESCE(SUM(price_cents), 0)").
			Scan(&total).Error
		return total, err
	}
	if dash.RevenueCents, err = sumByStatus(models.StatusConfirmed); err != nil {
		return financeError(c, err)
	}
	if dash.CancellationLossCents, err = sumByStatus(models.StatusCancelled); err != nil {
		return financeError(c, err)
	}
	if dash.NoShowLossCents, err = sumByStatus(models.StatusNoShow); err != nil {
		return financeError(c, err)
	}

	sumExpenses := func(category string) (int64, error) {
		var total int64
		err := db.DB.Model(&models.Expense{}).
			Where("expense_date BETWEEN ? AND ? AND category = ?",
				scheduling.DateOnly(start), scheduling.DateOnly(end), category).
			Select("COALESCE(SUM(amount_cents), 0)").
			Scan(&total).Error
		return total, err
	}
	if dash.FixedExpenseCents, err = sumExpenses(models.ExpenseFixed); err != nil {
		return financeError(c, err)
	}
	if dash.VariableExpenseCents, err = sumExpenses(models.ExpenseVariable); err != nil {
		return financeError(c, err)
	}
	if dash.MaterialsExpenseCents, err = sumExpenses(models.ExpenseMaterials); err != nil {
		return financeError(c, err)
	}
	if dash.EmployeesExpenseCents, err = sumExpenses(models.ExpenseEmployees); err != nil {
		return financeError(c, err)
	}
	if dash.OtherExpenseCents, err = sumExpenses(models.ExpenseOther); err != nil {
		return financeError(c, err)
	}

	dash.TotalExpenseCents = dash.FixedExpenseCents + dash.VariableExpenseCents +
		dash.MaterialsExpenseCents + dash.EmployeesExpenseCents + dash.OtherExpenseCents
	dash.ProfitCents = dash.RevenueCents - dash.CancellationLossCents -
		dash.NoShowLossCents - dash.TotalExpenseCents

	return c.JSON(dash)
}

func financeError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Failed to compute finance dashboard",
		Error:   err.Error(),
	})
}

func ListExpenses(c *fiber.Ctx) error {
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start date, use YYYY-MM-DD",
		})
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid end date, use YYYY-MM-DD",
		})
	}

	var expenses []models.Expense
	err = db.DB.Where("expense_date BETWEEN ? AND ?",
		scheduling.DateOnly(start), scheduling.DateOnly(end)).
		Order("expense_date asc").
		Find(&expenses).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch expenses",
			Error:   err.Error(),
		})
	}
	return c.JSON(expenses)
}

type expenseRequest struct {
	Category    *string `json:"category"`
	AmountCents *int    `json:"amount_cents"`
	ExpenseDate *string `json:"expense_date"`
	Description *string `json:"description"`
}

func CreateExpense(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if req.Category == nil || req.AmountCents == nil || req.ExpenseDate == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "category, amount_cents and expense_date are required",
		})
	}
	date, err := utils.ParseDate(*req.ExpenseDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid expense_date, use YYYY-MM-DD",
		})
	}

	expense := models.Expense{
		Category:    *req.Category,
		AmountCents: *req.AmountCents,
		ExpenseDate: date,
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if err := db.DB.Create(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create expense",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func UpdateExpense(c *fiber.Ctx) error {
	var expense models.Expense
	if err := db.DB.First(&expense, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Expense not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch expense",
			Error:   err.Error(),
		})
	}

	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.AmountCents != nil {
		expense.AmountCents = *req.AmountCents
	}
	if req.ExpenseDate != nil {
		date, err := utils.ParseDate(*req.ExpenseDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid expense_date, use YYYY-MM-DD",
			})
		}
		expense.ExpenseDate = date
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if err := db.DB.Save(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update expense",
			Error:   err.Error(),
		})
	}
	return c.JSON(expense)
}

func DeleteExpense(c *fiber.Ctx) error {
	if err := db.DB.Delete(&models.Expense{}, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete expense",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
