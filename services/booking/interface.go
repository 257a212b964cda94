package booking

import (
	"context"

	appointmentRepo "carebook/database/repository/appointment"
	overrideRepo "carebook/database/repository/override"
	providerRepo "carebook/database/repository/provider"
	scheduleRepo "carebook/database/repository/schedule"
	"carebook/models"
	"carebook/services/notification"

	"github.com/go-redis/redis/v8"
)

// BookingService exposes the scheduling core: read-only slot computation and
// the single mutating booking entry point, plus the appointment lifecycle.
type BookingService interface {
	// ComputeSlots returns the ordered fixed-width slots for a provider on a
	// date. The result is a snapshot: it can go stale the moment a concurrent
	// booking lands, and TryBook remains the authoritative gate.
	ComputeSlots(ctx context.Context, providerID, date string) (*models.DaySlotsResponse, error)

	// TryBook validates and persists one appointment atomically. On success
	// the appointment is created with status pending.
	TryBook(ctx context.Context, userID string, req models.BookAppointmentRequest) (*models.Appointment, error)

	// UpdateStatus moves an appointment through its lifecycle on behalf of
	// the caller identified by callerID/callerRole.
	UpdateStatus(ctx context.Context, callerID, callerRole, appointmentID string, next models.AppointmentStatus) (*models.Appointment, error)

	ListUserAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	ListProviderAppointments(ctx context.Context, providerID, date string) ([]models.Appointment, error)
}

// ReminderScheduler enqueues appointment reminders. Implemented by the tasks
// package on top of asynq; nil disables reminders.
type ReminderScheduler interface {
	ScheduleAppointmentReminders(ctx context.Context, appt *models.Appointment) error
}

// DefaultBookingEngine is the production implementation.
type DefaultBookingEngine struct {
	ProviderRepo    providerRepo.ProviderRepository
	ScheduleRepo    scheduleRepo.ScheduleRepository
	OverrideRepo    overrideRepo.OverrideRepository
	AppointmentRepo appointmentRepo.AppointmentRepository

	// Optional collaborators; nil values are tolerated.
	Notification notification.NotificationService
	Reminders    ReminderScheduler
	Cache        *redis.Client

	locks providerLocks
}
