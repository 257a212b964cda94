package provider

import (
	"context"
	"fmt"
	"time"

	"carebook/models"
	"carebook/utils"

	"github.com/google/uuid"
)

// SetWeeklySchedule replaces the provider's working windows for the weekdays
// named in the request. Days not mentioned keep their current record.
func (s *DefaultProviderService) SetWeeklySchedule(ctx context.Context, providerID string, req models.SetScheduleRequest) ([]models.WeeklySchedule, error) {
	seen := map[int]bool{}
	schedules := make([]models.WeeklySchedule, 0, len(req.Days))

	for _, day := range req.Days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			return nil, newValidationError("dayOfWeek must be between 0 and 6")
		}
		if seen[day.DayOfWeek] {
			return nil, newValidationError("duplicate entry for dayOfWeek %d", day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true

		ws := models.WeeklySchedule{
			ID:          uuid.New().String(),
			ProviderID:  providerID,
			DayOfWeek:   day.DayOfWeek,
			IsAvailable: day.IsAvailable,
			MaxPatients: day.MaxPatients,
		}

		if day.IsAvailable {
			start, err := utils.ParseClock(day.StartTime)
			if err != nil {
				return nil, newValidationError("day %d: %v", day.DayOfWeek, err)
			}
			end, err := utils.ParseClock(day.EndTime)
			if err != nil {
				return nil, newValidationError("day %d: %v", day.DayOfWeek, err)
			}
			if !utils.ValidClockRange(start, end) {
				return nil, newValidationError("day %d: startTime must be before endTime", day.DayOfWeek)
			}
			ws.Start = start
			ws.End = end
		}

		schedules = append(schedules, ws)
	}

	for i := range schedules {
		if err := s.ScheduleRepo.Upsert(ctx, &schedules[i]); err != nil {
			return nil, err
		}
	}

	// Weekly changes affect every future date of those weekdays; cached slot
	// lists are short-lived, so the TTL absorbs the transition.
	return schedules, nil
}

// GetWeeklySchedule lists the provider's weekly working windows.
func (s *DefaultProviderService) GetWeeklySchedule(ctx context.Context, providerID string) ([]models.WeeklySchedule, error) {
	schedules, err := s.ScheduleRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly schedule: %w", err)
	}
	return schedules, nil
}

// notBeforeToday rejects calendar dates in the past.
func notBeforeToday(date string) error {
	d, err := utils.ParseDate(date)
	if err != nil {
		return newValidationError("%v", err)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return newValidationError("date %s is in the past", date)
	}
	return nil
}
