package scheduleRepo

import (
	"context"

	"carebook/models"
)

// ScheduleRepository defines persistence operations for weekly working windows.
type ScheduleRepository interface {
	// Upsert replaces the record for (providerId, dayOfWeek), keeping at most
	// one active row per weekday.
	Upsert(ctx context.Context, schedule *models.WeeklySchedule) error
	GetByProviderDay(ctx context.Context, providerID string, dayOfWeek int) (*models.WeeklySchedule, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.WeeklySchedule, error)
}
