package booking

import (
	"context"
	"fmt"

	appointmentRepo "carebook/database/repository/appointment"
	"carebook/models"
	"carebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TryBook validates a proposed [start,end) against the provider's effective
// window and the appointment ledger, then inserts the appointment atomically.
// Exactly one appointment row is created on success; no writes happen on any
// rejection path.
func (se *DefaultBookingEngine) TryBook(ctx context.Context, userID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	start, end, err := parseBookingInterval(req)
	if err != nil {
		return nil, err
	}

	provider, err := se.ProviderRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if provider == nil || !provider.IsAvailable {
		return nil, NewProviderUnavailableError("this provider is currently unavailable")
	}

	window, err := se.resolveWindow(ctx, req.ProviderID, req.Date)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, NewProviderUnavailableError(
			fmt.Sprintf("provider is not working on %s", req.Date))
	}
	if !window.Contains(start, end) {
		return nil, NewOutsideWorkingHoursError(fmt.Sprintf(
			"requested time %s-%s is outside working hours %s-%s",
			utils.FormatClock(start), utils.FormatClock(end),
			utils.FormatClock(window.Start), utils.FormatClock(window.End)))
	}

	appt := &models.Appointment{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		UserID:     userID,
		ChildID:    req.ChildID,
		Date:       req.Date,
		Start:      start,
		End:        end,
		Status:     models.StatusPending,
		Notes:      req.Notes,
	}

	// Critical section: overlap check and insert are one unit per provider.
	// The repository runs them in a mongo transaction as well, so the second
	// of two concurrent conflicting inserts always fails.
	unlock := se.locks.Lock(req.ProviderID)
	err = se.AppointmentRepo.CreateIfFree(ctx, appt)
	unlock()

	switch err {
	case nil:
	case appointmentRepo.ErrSlotTaken:
		return nil, NewSlotAlreadyBookedError("this time slot is already booked")
	case appointmentRepo.ErrTxnConflict:
		return nil, NewConcurrencyConflictError("this time slot was just booked, please choose another")
	default:
		return nil, fmt.Errorf("booking failed: %w", err)
	}

	utils.InvalidateSlotCache(ctx, req.ProviderID, req.Date)

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.String("date", appt.Date),
		zap.Int("start", appt.Start),
		zap.Int("end", appt.End))

	se.afterBooking(ctx, provider, appt)
	return appt, nil
}

// parseBookingInterval validates the wire formats and ordering before any
// storage is touched.
func parseBookingInterval(req models.BookAppointmentRequest) (start, end int, err error) {
	if _, err := utils.ParseDate(req.Date); err != nil {
		return 0, 0, NewInvalidInputError(err.Error())
	}
	start, err = utils.ParseClock(req.StartTime)
	if err != nil {
		return 0, 0, NewInvalidInputError(err.Error())
	}
	end, err = utils.ParseClock(req.EndTime)
	if err != nil {
		return 0, 0, NewInvalidInputError(err.Error())
	}
	if !utils.ValidClockRange(start, end) {
		return 0, 0, NewInvalidInputError("startTime must be before endTime")
	}
	return start, end, nil
}

// afterBooking fires the best-effort side channels: push notifications and
// scheduled reminders. Failures here never fail the booking.
func (se *DefaultBookingEngine) afterBooking(ctx context.Context, provider *models.Provider, appt *models.Appointment) {
	logger := utils.GetLogger()

	if se.Notification != nil {
		data := map[string]string{"type": "appointment_created", "appointmentId": appt.ID}
		body := fmt.Sprintf("New appointment on %s at %s", appt.Date, utils.FormatClock(appt.Start))
		if err := se.Notification.SendProviderPush(ctx, provider.ID, "New appointment request", body, data); err != nil {
			logger.Sugar().Warnf("provider booking push failed: %v", err)
		}
	}

	if se.Reminders != nil {
		if err := se.Reminders.ScheduleAppointmentReminders(ctx, appt); err != nil {
			logger.Sugar().Warnf("failed to schedule reminders for %s: %v", appt.ID, err)
		}
	}
}
