package overrideRepo

import (
	"context"

	"carebook/models"
)

// OverrideRepository defines persistence operations for per-date schedule
// exceptions.
type OverrideRepository interface {
	// Upsert replaces the override for (providerId, date).
	Upsert(ctx context.Context, override *models.DateOverride) error
	// UpsertMany applies a batch of overrides, replacing any existing record
	// per date.
	UpsertMany(ctx context.Context, overrides []models.DateOverride) error
	GetByProviderDate(ctx context.Context, providerID, date string) (*models.DateOverride, error)
	ListRange(ctx context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error)
	Delete(ctx context.Context, providerID, date string) error
}
