package models

import "time"

// AppointmentStatus tracks an appointment through its lifecycle.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Occupies reports whether an appointment in this status holds its time range
// against other bookings. Cancelled, completed and no-show appointments do not.
func (s AppointmentStatus) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Valid reports whether s is a known status value.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo enforces the lifecycle:
// pending -> confirmed -> completed, and pending|confirmed -> cancelled|no_show.
// Completed, cancelled and no_show are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled || next == StatusNoShow
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled || next == StatusNoShow
	}
	return false
}

// Appointment is one booked [start,end) interval on a provider's calendar.
type Appointment struct {
	ID         string            `bson:"id" json:"id"`
	ProviderID string            `bson:"providerId" json:"providerId"`
	UserID     string            `bson:"userId" json:"userId"`
	ChildID    string            `bson:"childId,omitempty" json:"childId,omitempty"`
	Date       string            `bson:"date" json:"date"`   // "2006-01-02"
	Start      int               `bson:"start" json:"start"` // minutes from midnight, inclusive
	End        int               `bson:"end" json:"end"`     // minutes from midnight, exclusive
	Status     AppointmentStatus `bson:"status" json:"status"`
	Notes      string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// Overlaps applies the half-open interval test against another time range on
// the same date. Touching boundaries (End == other start) do not overlap.
func (a *Appointment) Overlaps(start, end int) bool {
	return start < a.End && end > a.Start
}

// BookAppointmentRequest is the payload for creating an appointment.
type BookAppointmentRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	Date       string `json:"date" binding:"required"`      // "2006-01-02"
	StartTime  string `json:"startTime" binding:"required"` // "HH:MM"
	EndTime    string `json:"endTime" binding:"required"`   // "HH:MM"
	ChildID    string `json:"childId"`
	Notes      string `json:"notes" binding:"max=500"`
}

// UpdateAppointmentStatusRequest moves an appointment through its lifecycle.
type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
