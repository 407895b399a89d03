package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/nailstudio/booking-api/db"
	"github.com/nailstudio/booking-api/models"
	"github.com/nailstudio/booking-api/scheduling"
	"github.com/nailstudio/booking-api/utils"
)

// StartReminderJob schedules the appointment reminder sweep.
func StartReminderJob() {
	c := cron.New()
	// Sweep every 5 minutes for appointments starting in ~1 hour.
	if _, err := c.AddFunc("*/5 * * * *", sendAppointmentReminders); err != nil {
		log.Fatal().Err(err).Msg("failed to register reminder job")
	}
	c.Start()
	log.Info().Msg("reminder job started")
}

// sendAppointmentReminders mails clients whose confirmed appointment
// starts within the next 55-65 minutes in the studio timezone.
func sendAppointmentReminders() {
	ctx := context.Background()
	tz := scheduling.Default.Settings(ctx).Timezone
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	var appointments []models.Appointment
	err = db.DB.Preload("Service").Preload("Employee").
		Where("appointment_date = ? AND status = ?",
			scheduling.DateOnly(now), models.StatusConfirmed).
		Find(&appointments).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch appointments for reminders")
		return
	}

	for _, a := range appointments {
		start, err := scheduling.ParseClock(a.StartTime)
		if err != nil {
			continue
		}
		startAt := time.Date(now.Year(), now.Month(), now.Day(),
			int(start)/60, int(start)%60, 0, 0, loc)
		until := startAt.Sub(now)
		if until < 55*time.Minute || until >= 65*time.Minute {
			continue
		}
		if a.ClientEmail == "" {
			continue
		}
		if err := sendReminderEmail(&a); err != nil {
			log.Warn().Err(err).Str("appointment", a.ID.String()).Msg("failed to send reminder")
			continue
		}
		log.Info().Str("appointment", a.ID.String()).Str("to", a.ClientEmail).Msg("sent reminder")
	}
}

func sendReminderEmail(a *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: %s at %s", a.Service.Name, a.StartTime)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment in one hour.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>With:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time.</p>
	`, a.ClientName, a.Service.Name, a.Employee.FullName,
		utils.FormatDate(a.AppointmentDate), a.StartTime)
	return utils.SendEmail(a.ClientEmail, subject, body)
}
