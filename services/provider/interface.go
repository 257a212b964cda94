package provider

import (
	"context"

	overrideRepo "carebook/database/repository/override"
	providerRepo "carebook/database/repository/provider"
	scheduleRepo "carebook/database/repository/schedule"
	"carebook/models"
)

// ProviderService manages provider accounts, their weekly working windows and
// their per-date exceptions.
type ProviderService interface {
	Register(ctx context.Context, req models.ProviderRegistrationRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetByID(ctx context.Context, providerID string) (*models.ProviderDTO, error)
	UpdateProfile(ctx context.Context, providerID string, req models.ProviderUpdateRequest) error

	SetWeeklySchedule(ctx context.Context, providerID string, req models.SetScheduleRequest) ([]models.WeeklySchedule, error)
	GetWeeklySchedule(ctx context.Context, providerID string) ([]models.WeeklySchedule, error)

	SetOverride(ctx context.Context, providerID string, req models.SetOverrideRequest) (*models.DateOverride, error)
	BulkSetOverrides(ctx context.Context, providerID string, req models.BulkOverrideRequest) (int, error)
	ClearOverride(ctx context.Context, providerID, date string) error
	ListOverrides(ctx context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo         providerRepo.ProviderRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	OverrideRepo overrideRepo.OverrideRepository
}
