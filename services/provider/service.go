package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carebook/models"
	"carebook/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// Register creates a provider account and signs it in.
func (s *DefaultProviderService) Register(ctx context.Context, req models.ProviderRegistrationRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing provider: %w", err)
	}
	if existing != nil {
		return nil, newValidationError("a provider with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	prov := &models.Provider{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Email:           email,
		PasswordHash:    string(hash),
		Phone:           req.Phone,
		Specialty:       req.Specialty,
		Bio:             req.Bio,
		SlotDuration:    req.SlotDuration,
		ConsultationFee: req.Fee,
		IsAvailable:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(ctx, prov); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, prov)
}

// Authenticate verifies credentials and returns a fresh token.
func (s *DefaultProviderService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	prov, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if prov == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(prov.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, prov)
}

func (s *DefaultProviderService) issueToken(ctx context.Context, prov *models.Provider) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(prov.ID, "provider", tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, prov.ID, hash); err != nil {
		return nil, err
	}
	if utils.AuthCacheClient != nil {
		cacheKey := utils.AuthCachePrefix + "provider:" + prov.ID
		_ = utils.AuthCacheClient.Set(ctx, cacheKey, hash, time.Hour).Err()
	}

	return &models.AuthResponse{
		Token: token,
		ID:    prov.ID,
		Name:  prov.Name,
		Email: prov.Email,
	}, nil
}

// GetByID returns the public profile of a provider.
func (s *DefaultProviderService) GetByID(ctx context.Context, providerID string) (*models.ProviderDTO, error) {
	prov, err := s.Repo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, ErrNotFound
	}
	dto := prov.Public()
	return &dto, nil
}

// UpdateProfile applies the mutable profile fields.
func (s *DefaultProviderService) UpdateProfile(ctx context.Context, providerID string, req models.ProviderUpdateRequest) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.SlotDuration != nil {
		switch *req.SlotDuration {
		case 15, 30, 45, 60:
			fields["slotDuration"] = *req.SlotDuration
		default:
			return newValidationError("slotDuration must be one of 15, 30, 45, 60")
		}
	}
	if req.Fee != nil {
		fields["consultationFee"] = *req.Fee
	}
	if req.IsAvailable != nil {
		fields["isAvailable"] = *req.IsAvailable
	}
	if req.FCMToken != nil {
		fields["fcmToken"] = *req.FCMToken
	}
	if len(fields) == 0 {
		return newValidationError("no fields to update")
	}
	return s.Repo.Update(ctx, providerID, fields)
}
