package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carebook/config"
	"carebook/models"
	"carebook/utils"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task that fires at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders on the redis-backed
// task queue. It implements booking.ReminderScheduler.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleAppointmentReminders enqueues one reminder per party, firing a
// configurable lead time before the appointment start. Reminders landing in
// the past are skipped rather than fired immediately.
func (s *AsynqReminderScheduler) ScheduleAppointmentReminders(ctx context.Context, appt *models.Appointment) error {
	day, err := utils.ParseDate(appt.Date)
	if err != nil {
		return err
	}
	startAt := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local).
		Add(time.Duration(appt.Start) * time.Minute)
	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	clock := utils.FormatClock(appt.Start)
	reminders := []models.ReminderPayload{
		{
			AppointmentID: appt.ID,
			Target:        "user",
			ID:            appt.UserID,
			Title:         "Upcoming appointment",
			Body:          fmt.Sprintf("Your appointment is at %s today. See you there!", clock),
			FireDate:      fireAt.Format(time.RFC3339),
		},
		{
			AppointmentID: appt.ID,
			Target:        "provider",
			ID:            appt.ProviderID,
			Title:         "Upcoming appointment",
			Body:          fmt.Sprintf("You have an appointment at %s today.", clock),
			FireDate:      fireAt.Format(time.RFC3339),
		},
	}

	for _, payload := range reminders {
		task, opts, err := NewReminderTask(payload, fireAt)
		if err != nil {
			return err
		}
		if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
			return fmt.Errorf("failed to enqueue reminder for %s: %w", payload.Target, err)
		}
	}
	return nil
}
