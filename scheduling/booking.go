package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nailstudio/booking-api/models"
)

// Cancellation is allowed only up to this long before the appointment
// starts, in the studio timezone.
const cancelCutoff = 6 * time.Hour

const cancelReasonByClient = "BY_CLIENT"

// CreateAppointment books a slot as an atomic CONFIRMED reservation.
//
// Phase 1 is advisory and lock-free: preconditions, option resolution
// and a re-run of the availability computation. Phase 2 is
// authoritative: inside one transaction the employee's confirmed rows
// for the date are locked, re-scanned for overlap, and the appointment
// is inserted. The partial unique index on (employee, date, start) over
// CONFIRMED rows is the last backstop; its violation is reported as
// ErrConflict.
func (s *Scheduler) CreateAppointment(ctx context.Context, clientID, employeeID, serviceID uuid.UUID, date time.Time, startTime string, optionIDs []uuid.UUID) (*models.Appointment, error) {
	tx := s.db.WithContext(ctx)

	var client models.User
	if err := tx.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if client.Blocked {
		return nil, ErrBlocked
	}

	var employee models.Employee
	if err := tx.Preload("Services").First(&employee, "id = ?", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var service models.Service
	if err := tx.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !employee.Active || !service.Active {
		return nil, ErrInactive
	}
	if !employee.Offers(serviceID) {
		return nil, ErrUnqualified
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	priceCents := service.PriceCents
	durationMin := service.DurationMin
	var snapshot models.OptionsSnapshot
	if len(optionIDs) > 0 {
		var options []models.ServiceOption
		if err := tx.Where("id IN ?", optionIDs).Find(&options).Error; err != nil {
			return nil, err
		}
		// Stale or foreign option ids are dropped silently: the
		// client's catalog may be out of date.
		for _, o := range options {
			if o.ServiceID != serviceID || !o.Active {
				continue
			}
			priceCents += o.PriceDeltaCents
			durationMin += o.DurationDeltaMin
			snapshot = append(snapshot, models.OptionSnapshot{ID: o.ID, Name: o.Name})
		}
	}
	// Slots are reserved assuming at most DurationMax of calendar time;
	// options must not push the booking past what was reserved.
	if durationMin > service.DurationMax {
		return nil, ErrInvalidArgument
	}
	end := start + Minutes(durationMin)

	available, err := s.AvailableSlots(ctx, employeeID, serviceID, date)
	if err != nil {
		return nil, err
	}
	// Compare the canonical rendering: "9:00" and "09:00" are the same
	// slot.
	if !containsSlot(available, start.Clock()) {
		return nil, ErrSlotUnavailable
	}

	day := DateOnly(date)
	appointment := &models.Appointment{
		ClientID:        client.ID,
		EmployeeID:      employee.ID,
		ServiceID:       service.ID,
		AppointmentDate: day,
		StartTime:       start.Clock(),
		EndTime:         end.Clock(),
		Status:          models.StatusConfirmed,
		PriceCents:      priceCents,
		DurationMin:     durationMin,
		ClientName:      client.FullName,
		ClientEmail:     client.Email,
		ClientPhone:     client.Phone,
		OptionsSnapshot: snapshot,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		confirmed, err := lockConfirmedForDay(tx, employee.ID, day)
		if err != nil {
			return err
		}
		// A concurrent booking may have landed between the advisory
		// check above and this point.
		for _, other := range confirmed {
			w, err := parseWindow(other.StartTime, other.EndTime)
			if err != nil {
				return err
			}
			if Overlaps(start, end, w.Start, w.End) {
				return ErrConflict
			}
		}
		if err := tx.Create(appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// CancelByClient transitions a client's own CONFIRMED appointment to
// CANCELLED, provided the cutoff window has not started. An attempt at
// exactly cutoff distance from the start already fails.
func (s *Scheduler) CancelByClient(ctx context.Context, appointmentID, clientID uuid.UUID) error {
	tx := s.db.WithContext(ctx)

	var appointment models.Appointment
	if err := tx.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if appointment.ClientID != clientID {
		return ErrForbidden
	}
	if !appointment.CanTransition(models.StatusCancelled) {
		return ErrInvalidState
	}

	start, err := ParseClock(appointment.StartTime)
	if err != nil {
		return err
	}
	loc := s.studioLocation(ctx)
	d := appointment.AppointmentDate
	startAt := time.Date(d.Year(), d.Month(), d.Day(), int(start)/60, int(start)%60, 0, 0, loc)
	now := s.now().In(loc)
	if !now.Add(cancelCutoff).Before(startAt) {
		return ErrTooLate
	}

	cancelledAt := s.now()
	return tx.Model(&appointment).Updates(map[string]interface{}{
		"status":        models.StatusCancelled,
		"cancelled_at":  cancelledAt,
		"cancel_reason": cancelReasonByClient,
	}).Error
}

// SubstituteEmployee reassigns a CONFIRMED appointment to another
// qualified employee, keeping its time, and appends an immutable audit
// record naming the actor.
func (s *Scheduler) SubstituteEmployee(ctx context.Context, appointmentID, newEmployeeID uuid.UUID, actor string) (*models.Appointment, error) {
	tx := s.db.WithContext(ctx)

	var appointment models.Appointment
	if err := tx.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if appointment.Status != models.StatusConfirmed {
		return nil, ErrInvalidState
	}
	if appointment.EmployeeID == newEmployeeID {
		return nil, ErrInvalidArgument
	}

	var newEmployee models.Employee
	if err := tx.Preload("Services").First(&newEmployee, "id = ?", newEmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !newEmployee.Active {
		return nil, ErrInactive
	}
	if !newEmployee.Offers(appointment.ServiceID) {
		return nil, ErrUnqualified
	}

	window, err := parseWindow(appointment.StartTime, appointment.EndTime)
	if err != nil {
		return nil, err
	}
	previousEmployeeID := appointment.EmployeeID

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		confirmed, err := lockConfirmedForDay(tx, newEmployee.ID, appointment.AppointmentDate)
		if err != nil {
			return err
		}
		for _, other := range confirmed {
			w, err := parseWindow(other.StartTime, other.EndTime)
			if err != nil {
				return err
			}
			if Overlaps(window.Start, window.End, w.Start, w.End) {
				return ErrConflict
			}
		}
		if err := tx.Model(&appointment).Update("employee_id", newEmployee.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}
		return tx.Create(&models.Substitution{
			AppointmentID:      appointment.ID,
			PreviousEmployeeID: previousEmployeeID,
			NewEmployeeID:      newEmployee.ID,
			SubstitutedAt:      s.now(),
			SubstitutedBy:      actor,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	appointment.EmployeeID = newEmployee.ID
	return &appointment, nil
}

// AgendaForDay lists a day's appointments, optionally for one employee.
func (s *Scheduler) AgendaForDay(ctx context.Context, date time.Time, employeeID *uuid.UUID) ([]models.Appointment, error) {
	q := s.db.WithContext(ctx).
		Preload("Employee").Preload("Service").
		Where("appointment_date = ?", DateOnly(date)).
		Order("start_time asc")
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}
	var appointments []models.Appointment
	err := q.Find(&appointments).Error
	return appointments, err
}

// AppointmentsByClient lists a client's appointments in a date range.
func (s *Scheduler) AppointmentsByClient(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Employee").Preload("Service").
		Where("client_id = ? AND appointment_date BETWEEN ? AND ?", clientID, DateOnly(from), DateOnly(to)).
		Order("appointment_date asc, start_time asc").
		Find(&appointments).Error
	return appointments, err
}

// AppointmentsByEmployeeForDay lists an employee's CONFIRMED
// appointments for one date.
func (s *Scheduler) AppointmentsByEmployeeForDay(ctx context.Context, employeeID uuid.UUID, date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Service").
		Where("employee_id = ? AND appointment_date = ? AND status = ?",
			employeeID, DateOnly(date), models.StatusConfirmed).
		Order("start_time asc").
		Find(&appointments).Error
	return appointments, err
}

// lockConfirmedForDay loads the candidate conflict set under a
// row-level write lock so concurrent bookings for the same employee and
// date serialize. SQLite has no FOR UPDATE; its single-writer model
// serializes the enclosing transaction instead.
func lockConfirmedForDay(tx *gorm.DB, employeeID uuid.UUID, day time.Time) ([]models.Appointment, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var confirmed []models.Appointment
	err := q.Where("employee_id = ? AND appointment_date = ? AND status = ?",
		employeeID, day, models.StatusConfirmed).
		Find(&confirmed).Error
	return confirmed, err
}

func (s *Scheduler) studioLocation(ctx context.Context) *time.Location {
	loc, err := time.LoadLocation(s.Settings(ctx).Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func containsSlot(slots []string, start string) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}
