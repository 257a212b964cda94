package userRepo

import (
	"context"

	"carebook/models"
)

// UserRepository defines persistence operations for booking clients.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, userID string, fields map[string]interface{}) error
	SetTokenHash(ctx context.Context, userID, tokenHash string) error
}
