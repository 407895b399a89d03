package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nailstudio/booking-api/models"
)

// Scheduler is the availability engine plus the booking transaction
// manager. It holds no state of its own; everything lives in the store.
type Scheduler struct {
	db  *gorm.DB
	rdb *redis.Client
	now func() time.Time
}

// New builds a Scheduler. rdb may be nil; the settings snapshot cache
// is then skipped and settings are read from the store every time.
func New(db *gorm.DB, rdb *redis.Client) *Scheduler {
	return &Scheduler{db: db, rdb: rdb, now: time.Now}
}

// Default is the process-wide instance wired up in main.
var Default *Scheduler

func Init(db *gorm.DB, rdb *redis.Client) {
	Default = New(db, rdb)
}

// DateOnly strips the time component so calendar dates compare by
// equality regardless of how the caller built them.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AvailableSlots computes the valid appointment start times ("HH:MM",
// ascending) for an employee, service and date.
//
// A missing employee or service is ErrNotFound. An inactive employee or
// service, or one the employee is not qualified for, simply has no
// availability and yields an empty list. The computation is read-only
// and lock-free: it is advisory, and booking re-validates everything
// under the store's locks.
func (s *Scheduler) AvailableSlots(ctx context.Context, employeeID, serviceID uuid.UUID, date time.Time) ([]string, error) {
	tx := s.db.WithContext(ctx)

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
	if !employee.Active || !service.Active || !employee.Offers(serviceID) {
		return []string{}, nil
	}

	day := DateOnly(date)
	var holidays int64
	if err := tx.Model(&models.Holiday{}).Where("holiday_date = ?", day).Count(&holidays).Error; err != nil {
		return nil, err
	}
	if holidays > 0 {
		return []string{}, nil
	}

	settings := s.Settings(ctx)
	blockMinutes := service.DurationMax + settings.BufferMinutes

	windows, err := s.windowsForDay(tx, employeeID, day)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []string{}, nil
	}
	occupied, err := s.occupiedIntervals(tx, employeeID, day)
	if err != nil {
		return nil, err
	}

	slots := GenerateSlots(windows, settings.SlotMinutes, blockMinutes, service.DurationMin, occupied)
	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = slot.Clock()
	}
	return out, nil
}

// windowsForDay returns the employee's weekly windows for the date's
// weekday with that date's ad-hoc blocks subtracted. Lunch-break rows
// are returned as ordinary windows; they are stored for display and are
// not subtracted here.
func (s *Scheduler) windowsForDay(tx *gorm.DB, employeeID uuid.UUID, day time.Time) ([]Window, error) {
	var rows []models.WeeklyAvailability
	err := tx.Where("employee_id = ? AND day_of_week = ?", employeeID, StoreDayOfWeek(day)).
		Order("start_time asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	windows := make([]Window, 0, len(rows))
	for _, row := range rows {
		w, err := parseWindow(row.StartTime, row.EndTime)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	if len(windows) == 0 {
		return nil, nil
	}

	var blocks []models.EmployeeBlock
	err = tx.Where("employee_id = ? AND block_date = ?", employeeID, day).Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return windows, nil
	}
	blocked := make([]Window, 0, len(blocks))
	for _, b := range blocks {
		w, err := parseWindow(b.StartTime, b.EndTime)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, w)
	}
	return Subtract(windows, blocked), nil
}

// occupiedIntervals is the union of the employee's CONFIRMED
// appointments and ad-hoc blocks for the date. Recomputed per request;
// the set is small and a live booking feed must not be served stale.
func (s *Scheduler) occupiedIntervals(tx *gorm.DB, employeeID uuid.UUID, day time.Time) ([]Window, error) {
	var appointments []models.Appointment
	err := tx.Where("employee_id = ? AND appointment_date = ? AND status = ?",
		employeeID, day, models.StatusConfirmed).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	var blocks []models.EmployeeBlock
	err = tx.Where("employee_id = ? AND block_date = ?", employeeID, day).Find(&blocks).Error
	if err != nil {
		return nil, err
	}

	occupied := make([]Window, 0, len(appointments)+len(blocks))
	for _, a := range appointments {
		w, err := parseWindow(a.StartTime, a.EndTime)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, w)
	}
	for _, b := range blocks {
		w, err := parseWindow(b.StartTime, b.EndTime)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, w)
	}
	return occupied, nil
}

func parseWindow(start, end string) (Window, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}
