package booking

import (
	"context"
	"fmt"

	"carebook/models"
	"carebook/utils"
)

// UpdateStatus moves an appointment through its lifecycle. Users may only
// cancel their own appointments; providers may confirm, complete, cancel or
// mark no-show on their own calendar. Illegal transitions and unknown
// statuses are invalid input, not faults.
func (se *DefaultBookingEngine) UpdateStatus(ctx context.Context, callerID, callerRole, appointmentID string, next models.AppointmentStatus) (*models.Appointment, error) {
	if !next.Valid() {
		return nil, NewInvalidInputError(fmt.Sprintf("unknown status %q", next))
	}

	appt, err := se.AppointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, NewInvalidInputError(fmt.Sprintf("appointment %s not found", appointmentID))
	}

	switch callerRole {
	case "user":
		if appt.UserID != callerID {
			return nil, NewInvalidInputError("appointment does not belong to this user")
		}
		if next != models.StatusCancelled {
			return nil, NewInvalidInputError("users may only cancel appointments")
		}
	case "provider":
		if appt.ProviderID != callerID {
			return nil, NewInvalidInputError("appointment does not belong to this provider")
		}
	default:
		return nil, NewInvalidInputError(fmt.Sprintf("unknown caller role %q", callerRole))
	}

	if !appt.Status.CanTransitionTo(next) {
		return nil, NewInvalidInputError(fmt.Sprintf(
			"cannot move appointment from %s to %s", appt.Status, next))
	}

	if err := se.AppointmentRepo.UpdateStatus(ctx, appointmentID, next); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appt.Status = next

	// A cancellation or no-show frees the interval immediately; drop the
	// cached slot list so the next picker fetch sees it open.
	if next == models.StatusCancelled || next == models.StatusNoShow {
		utils.InvalidateSlotCache(ctx, appt.ProviderID, appt.Date)
	}

	se.notifyStatusChange(ctx, callerRole, appt)
	return appt, nil
}

func (se *DefaultBookingEngine) notifyStatusChange(ctx context.Context, callerRole string, appt *models.Appointment) {
	if se.Notification == nil {
		return
	}
	logger := utils.GetLogger()

	data := map[string]string{
		"type":          "appointment_status",
		"appointmentId": appt.ID,
		"status":        string(appt.Status),
	}
	body := fmt.Sprintf("Your appointment on %s at %s is now %s",
		appt.Date, utils.FormatClock(appt.Start), appt.Status)

	// Notify the party who did not make the change.
	var err error
	if callerRole == "provider" {
		err = se.Notification.SendUserPush(ctx, appt.UserID, "Appointment update", body, data)
	} else {
		err = se.Notification.SendProviderPush(ctx, appt.ProviderID, "Appointment update", body, data)
	}
	if err != nil {
		logger.Sugar().Warnf("status change push failed for %s: %v", appt.ID, err)
	}
}

// ListUserAppointments returns a user's appointments, newest first.
func (se *DefaultBookingEngine) ListUserAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	appts, err := se.AppointmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// ListProviderAppointments returns a provider's ledger for one date, or the
// upcoming occupying appointments when date is empty.
func (se *DefaultBookingEngine) ListProviderAppointments(ctx context.Context, providerID, date string) ([]models.Appointment, error) {
	if date == "" {
		today := utils.Today()
		appts, err := se.AppointmentRepo.ListUpcomingByProvider(ctx, providerID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to list upcoming appointments: %w", err)
		}
		return appts, nil
	}

	if _, err := utils.ParseDate(date); err != nil {
		return nil, NewInvalidInputError(err.Error())
	}
	appts, err := se.AppointmentRepo.ListByProviderDate(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}
