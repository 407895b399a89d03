package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nailstudio/booking-api/cron"
	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/redis"
	"github.com/nailstudio/booking-api/routes"
	"github.com/nailstudio/booking-api/scheduling"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	db.Init()
	db.Migrate()
	redis.Init()
	scheduling.Init(db.DB, redis.Client)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupPublicRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupEmployeeRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartReminderJob()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Info().Str("port", port).Msg("server starting")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
