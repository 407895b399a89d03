package db

import (
	"github.com/rs/zerolog/log"

	"github.com/nailstudio/booking-api/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Service{},
		&models.ServiceOption{},
		&models.WeeklyAvailability{},
		&models.EmployeeBlock{},
		&models.Holiday{},
		&models.StudioSettings{},
		&models.Appointment{},
		&models.Substitution{},
		&models.Expense{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations applied")
}
