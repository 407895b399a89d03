package db

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func GetDB() *gorm.DB {
	return DB
}

// Init establishes the DB connection without running migrations.
// TranslateError is required so the unique-index violation on confirmed
// appointments surfaces as gorm.ErrDuplicatedKey.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, using environment variables directly")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	conn, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	DB = conn
	log.Info().Msg("database connection established")
}
