package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailstudio/booking-api/models"
)

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	appointment, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00", nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, appointment.Status)
	assert.Equal(t, "09:00", appointment.StartTime)
	assert.Equal(t, "09:30", appointment.EndTime)
	assert.Equal(t, 12000, appointment.PriceCents)
	assert.Equal(t, 30, appointment.DurationMin)
	assert.Equal(t, client.FullName, appointment.ClientName)
	assert.Equal(t, client.Email, appointment.ClientEmail)
	assert.Empty(t, appointment.OptionsSnapshot)

	var stored models.Appointment
	require.NoError(t, s.db.First(&stored, "id = ?", appointment.ID).Error)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
	assert.Equal(t, testDate, DateOnly(stored.AppointmentDate))
}

func TestCreateAppointmentWithOptions(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	nailArt := &models.ServiceOption{
		ServiceID:        service.ID,
		Name:             "Nail art",
		PriceDeltaCents:  3000,
		DurationDeltaMin: 15,
		Active:           true,
	}
	require.NoError(t, s.db.Create(nailArt).Error)
	retired := &models.ServiceOption{
		ServiceID:       service.ID,
		Name:            "Retired finish",
		PriceDeltaCents: 9900,
		Active:          false,
	}
	require.NoError(t, s.db.Create(retired).Error)

	// The inactive option is dropped without error; the active one
	// stretches the booking to 45 minutes, still within DurationMax.
	appointment, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00",
		[]uuid.UUID{nailArt.ID, retired.ID})
	require.NoError(t, err)

	assert.Equal(t, 15000, appointment.PriceCents)
	assert.Equal(t, 45, appointment.DurationMin)
	assert.Equal(t, "09:45", appointment.EndTime)
	require.Len(t, appointment.OptionsSnapshot, 1)
	assert.Equal(t, nailArt.ID, appointment.OptionsSnapshot[0].ID)
	assert.Equal(t, "Nail art", appointment.OptionsSnapshot[0].Name)

	// The snapshot survives a round trip through the store.
	var stored models.Appointment
	require.NoError(t, s.db.First(&stored, "id = ?", appointment.ID).Error)
	require.Len(t, stored.OptionsSnapshot, 1)
	assert.Equal(t, nailArt.ID, stored.OptionsSnapshot[0].ID)
}

func TestCreateAppointmentNonCanonicalStart(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	// "9:00" is valid input and names the same slot as "09:00".
	appointment, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "9:00", nil)
	require.NoError(t, err)
	assert.Equal(t, "09:00", appointment.StartTime)
}

func TestCreateAppointmentOptionsExceedDurationMax(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	oversized := &models.ServiceOption{
		ServiceID:        service.ID,
		Name:             "Full set",
		DurationDeltaMin: 20,
		Active:           true,
	}
	require.NoError(t, s.db.Create(oversized).Error)

	_, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00",
		[]uuid.UUID{oversized.ID})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	_, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00", nil)
	require.NoError(t, err)

	_, err = s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00", nil)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	var confirmed int64
	require.NoError(t, s.db.Model(&models.Appointment{}).
		Where("employee_id = ? AND appointment_date = ? AND status = ?",
			employee.ID, testDate, models.StatusConfirmed).
		Count(&confirmed).Error)
	assert.EqualValues(t, 1, confirmed)
}

func TestCreateAppointmentOffGridStart(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	_, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:07", nil)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateAppointmentBadStartTime(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	_, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "25:99", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateAppointmentBlockedClient(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)
	require.NoError(t, s.db.Model(client).Update("blocked", true).Error)

	_, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00", nil)
	assert.ErrorIs(t, err, ErrBlocked)
}

func TestCreateAppointmentUnqualifiedEmployee(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, _ := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	other := &models.Service{Name: "Pedicure", DurationMin: 40, DurationMax: 60, Active: true}
	require.NoError(t, s.db.Create(other).Error)

	_, err := s.CreateAppointment(ctx, client.ID, employee.ID, other.ID, testDate, "09:00", nil)
	assert.ErrorIs(t, err, ErrUnqualified)
}

func TestCreateAppointmentUnknownClient(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)

	_, err := s.CreateAppointment(ctx, uuid.New(), employee.ID, service.ID, testDate, "09:00", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelByClient(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	// Pin the studio timezone so the cutoff arithmetic below is exact.
	require.NoError(t, s.db.Create(&models.StudioSettings{
		SlotMinutes: 15, BufferMinutes: 10, Timezone: "UTC",
	}).Error)

	book := func(t *testing.T, start string) *models.Appointment {
		t.Helper()
		a, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, start, nil)
		require.NoError(t, err)
		return a
	}
	startAt := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("before the cutoff", func(t *testing.T) {
		a := book(t, "10:00")
		s.now = func() time.Time { return startAt.Add(-cancelCutoff - time.Second) }

		require.NoError(t, s.CancelByClient(ctx, a.ID, client.ID))

		var stored models.Appointment
		require.NoError(t, s.db.First(&stored, "id = ?", a.ID).Error)
		assert.Equal(t, models.StatusCancelled, stored.Status)
		assert.Equal(t, "BY_CLIENT", stored.CancelReason)
		require.NotNil(t, stored.CancelledAt)
	})

	t.Run("exactly at the cutoff is too late", func(t *testing.T) {
		a := book(t, "11:00")
		at := time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return at.Add(-cancelCutoff) }

		assert.ErrorIs(t, s.CancelByClient(ctx, a.ID, client.ID), ErrTooLate)
	})

	t.Run("someone else's appointment", func(t *testing.T) {
		a := book(t, "09:00")
		s.now = func() time.Time { return startAt.Add(-24 * time.Hour) }

		assert.ErrorIs(t, s.CancelByClient(ctx, a.ID, uuid.New()), ErrForbidden)
	})

	t.Run("already cancelled", func(t *testing.T) {
		a := book(t, "09:45")
		s.now = func() time.Time { return startAt.Add(-24 * time.Hour) }

		require.NoError(t, s.CancelByClient(ctx, a.ID, client.ID))
		assert.ErrorIs(t, s.CancelByClient(ctx, a.ID, client.ID), ErrInvalidState)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		assert.ErrorIs(t, s.CancelByClient(ctx, uuid.New(), client.ID), ErrNotFound)
	})

	t.Run("a freed slot can be rebooked and cancelled again", func(t *testing.T) {
		// 10:00 was cancelled in the first subtest; booking it again
		// and cancelling a second time leaves two cancelled rows for
		// the same slot.
		a := book(t, "10:00")
		s.now = func() time.Time { return startAt.Add(-24 * time.Hour) }

		require.NoError(t, s.CancelByClient(ctx, a.ID, client.ID))

		var cancelled int64
		require.NoError(t, s.db.Model(&models.Appointment{}).
			Where("employee_id = ? AND appointment_date = ? AND start_time = ? AND status = ?",
				employee.ID, testDate, "10:00", models.StatusCancelled).
			Count(&cancelled).Error)
		assert.EqualValues(t, 2, cancelled)
	})
}

func TestSubstituteEmployee(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	substitute := &models.Employee{
		FullName: "Carla Souza",
		Email:    "carla@studio.test",
		Active:   true,
		Services: []models.Service{*service},
	}
	require.NoError(t, s.db.Create(substitute).Error)
	require.NoError(t, s.db.Create(&models.WeeklyAvailability{
		EmployeeID: substitute.ID,
		DayOfWeek:  StoreDayOfWeek(testDate),
		StartTime:  "09:00",
		EndTime:    "12:00",
	}).Error)

	appointment, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00", nil)
	require.NoError(t, err)

	t.Run("same employee", func(t *testing.T) {
		_, err := s.SubstituteEmployee(ctx, appointment.ID, employee.ID, "admin@studio.test")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("conflicting agenda", func(t *testing.T) {
		// The substitute already has their own 09:00 booking.
		blocking, err := s.CreateAppointment(ctx, client.ID, substitute.ID, service.ID, testDate, "09:00", nil)
		require.NoError(t, err)

		_, err = s.SubstituteEmployee(ctx, appointment.ID, substitute.ID, "admin@studio.test")
		assert.ErrorIs(t, err, ErrConflict)

		require.NoError(t, s.db.Delete(blocking).Error)
	})

	t.Run("reassigns and records the audit trail", func(t *testing.T) {
		updated, err := s.SubstituteEmployee(ctx, appointment.ID, substitute.ID, "admin@studio.test")
		require.NoError(t, err)
		assert.Equal(t, substitute.ID, updated.EmployeeID)
		assert.Equal(t, "09:00", updated.StartTime)

		var audit models.Substitution
		require.NoError(t, s.db.First(&audit, "appointment_id = ?", appointment.ID).Error)
		assert.Equal(t, employee.ID, audit.PreviousEmployeeID)
		assert.Equal(t, substitute.ID, audit.NewEmployeeID)
		assert.Equal(t, "admin@studio.test", audit.SubstitutedBy)
		assert.False(t, audit.SubstitutedAt.IsZero())
	})

	t.Run("only confirmed appointments", func(t *testing.T) {
		require.NoError(t, s.db.Model(&models.Appointment{}).
			Where("id = ?", appointment.ID).
			Update("status", models.StatusCancelled).Error)

		_, err := s.SubstituteEmployee(ctx, appointment.ID, employee.ID, "admin@studio.test")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestSubstituteEmployeeUnqualified(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	unqualified := &models.Employee{FullName: "Dora Nunes", Active: true}
	require.NoError(t, s.db.Create(unqualified).Error)

	appointment, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00", nil)
	require.NoError(t, err)

	_, err = s.SubstituteEmployee(ctx, appointment.ID, unqualified.ID, "admin@studio.test")
	assert.ErrorIs(t, err, ErrUnqualified)
}

func TestAgendaQueries(t *testing.T) {
	ctx := context.Background()
	s := newTestScheduler(t)
	employee, service := seedCatalog(t, s.db)
	client := seedClient(t, s.db)

	first, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "10:00", nil)
	require.NoError(t, err)
	second, err := s.CreateAppointment(ctx, client.ID, employee.ID, service.ID, testDate, "09:00", nil)
	require.NoError(t, err)

	t.Run("day agenda orders by start time", func(t *testing.T) {
		agenda, err := s.AgendaForDay(ctx, testDate, nil)
		require.NoError(t, err)
		require.Len(t, agenda, 2)
		assert.Equal(t, second.ID, agenda[0].ID)
		assert.Equal(t, first.ID, agenda[1].ID)
	})

	t.Run("day agenda filters by employee", func(t *testing.T) {
		other := uuid.New()
		agenda, err := s.AgendaForDay(ctx, testDate, &other)
		require.NoError(t, err)
		assert.Empty(t, agenda)
	})

	t.Run("client history covers the range", func(t *testing.T) {
		history, err := s.AppointmentsByClient(ctx, client.ID,
			testDate.AddDate(0, 0, -1), testDate.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Len(t, history, 2)

		history, err = s.AppointmentsByClient(ctx, client.ID,
			testDate.AddDate(0, 0, 1), testDate.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("employee day view shows only confirmed", func(t *testing.T) {
		require.NoError(t, s.db.Model(&models.Appointment{}).
			Where("id = ?", first.ID).
			Update("status", models.StatusCancelled).Error)

		mine, err := s.AppointmentsByEmployeeForDay(ctx, employee.ID, testDate)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, second.ID, mine[0].ID)
	})
}
