package appointmentRepo

import (
	"context"
	"errors"

	"carebook/models"
)

// ErrSlotTaken is returned by CreateIfFree when an occupying appointment
// already overlaps the requested interval.
var ErrSlotTaken = errors.New("appointment interval already booked")

// ErrTxnConflict is returned when the atomic check-and-insert lost a race and
// could not be retried.
var ErrTxnConflict = errors.New("booking transaction conflict")

// AppointmentRepository defines persistence operations for the appointment
// ledger.
type AppointmentRepository interface {
	// CreateIfFree atomically verifies that no pending/confirmed appointment
	// overlaps [appt.Start, appt.End) on appt.Date and inserts the new row.
	// Returns ErrSlotTaken on overlap and ErrTxnConflict on a lost race.
	CreateIfFree(ctx context.Context, appt *models.Appointment) error

	GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// ListOccupying returns pending/confirmed appointments for a provider on
	// one date, ordered by start time.
	ListOccupying(ctx context.Context, providerID, date string) ([]models.Appointment, error)
	ListByProviderDate(ctx context.Context, providerID, date string) ([]models.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	ListUpcomingByProvider(ctx context.Context, providerID, fromDate string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error
}
