package providerRepo

import (
	"context"

	"carebook/models"
)

// ProviderRepository defines persistence operations for provider profiles.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	Update(ctx context.Context, providerID string, fields map[string]interface{}) error
	SetTokenHash(ctx context.Context, providerID, tokenHash string) error
}
