package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"carebook/config"
	appointmentRepo "carebook/database/repository/appointment"
	"carebook/models"
	"carebook/services/notification"
	"carebook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, apptRepo))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		// The appointment may have been cancelled since the reminder was
		// enqueued; only remind for still-occupying bookings.
		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			return err
		}
		if appt == nil || !appt.Status.Occupies() {
			log.Printf("[ReminderHandler] skipping reminder for %s: appointment no longer active", p.AppointmentID)
			return nil
		}

		data := map[string]string{
			"type":          "appointment_reminder",
			"appointmentId": p.AppointmentID,
			"fireDate":      p.FireDate,
		}

		switch p.Target {
		case "user":
			err = notifSvc.SendUserPush(ctx, p.ID, p.Title, p.Body, data)
		case "provider":
			err = notifSvc.SendProviderPush(ctx, p.ID, p.Title, p.Body, data)
		default:
			log.Printf("[ReminderHandler] unknown target type: %s", p.Target)
			return nil
		}

		if err != nil {
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
		}
		return err
	}
}
