package scheduling

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nailstudio/booking-api/models"
)

// testDate is a Monday (store day-of-week 2).
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.ServiceOption{},
		&models.Employee{},
		&models.WeeklyAvailability{},
		&models.EmployeeBlock{},
		&models.Holiday{},
		&models.StudioSettings{},
		&models.Appointment{},
		&models.Substitution{},
	))
	return db
}

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	return New(newTestDB(t), nil)
}

// seedCatalog creates an active employee qualified for an active
// 30-45 minute service, working 09:00-12:00 on testDate's weekday.
func seedCatalog(t *testing.T, db *gorm.DB) (*models.Employee, *models.Service) {
	t.Helper()
	service := &models.Service{
		Name:        "Gel manicure",
		PriceCents:  12000,
		DurationMin: 30,
		DurationMax: 45,
		Active:      true,
	}
	require.NoError(t, db.Create(service).Error)

	employee := &models.Employee{
		FullName: "Ana Lima",
		Email:    "ana@studio.test",
		Active:   true,
		Services: []models.Service{*service},
	}
	require.NoError(t, db.Create(employee).Error)

	require.NoError(t, db.Create(&models.WeeklyAvailability{
		EmployeeID: employee.ID,
		DayOfWeek:  StoreDayOfWeek(testDate),
		StartTime:  "09:00",
		EndTime:    "12:00",
	}).Error)
	return employee, service
}

func seedClient(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	client := &models.User{
		FullName: "Bia Costa",
		Email:    fmt.Sprintf("%s@client.test", strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_"))),
		Phone:    "+5511999990000",
		Role:     models.RoleClient,
	}
	require.NoError(t, db.Create(client).Error)
	return client
}
