package provider

import (
	"context"
	"testing"

	"carebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal in-memory fakes for the three repositories this service touches.

type fakeProviderRepo struct {
	providers map[string]*models.Provider
	updates   map[string]map[string]interface{}
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{
		providers: map[string]*models.Provider{},
		updates:   map[string]map[string]interface{}{},
	}
}

func (r *fakeProviderRepo) Create(_ context.Context, p *models.Provider) error {
	r.providers[p.ID] = p
	return nil
}

func (r *fakeProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	return r.providers[id], nil
}

func (r *fakeProviderRepo) GetByEmail(_ context.Context, email string) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProviderRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	r.updates[id] = fields
	return nil
}

func (r *fakeProviderRepo) SetTokenHash(_ context.Context, id, hash string) error {
	if p, ok := r.providers[id]; ok {
		p.TokenHash = hash
	}
	return nil
}

type fakeScheduleRepo struct {
	schedules map[int]*models.WeeklySchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[int]*models.WeeklySchedule{}}
}

func (r *fakeScheduleRepo) Upsert(_ context.Context, ws *models.WeeklySchedule) error {
	r.schedules[ws.DayOfWeek] = ws
	return nil
}

func (r *fakeScheduleRepo) GetByProviderDay(_ context.Context, _ string, day int) (*models.WeeklySchedule, error) {
	return r.schedules[day], nil
}

func (r *fakeScheduleRepo) ListByProvider(_ context.Context, _ string) ([]models.WeeklySchedule, error) {
	var out []models.WeeklySchedule
	for _, ws := range r.schedules {
		out = append(out, *ws)
	}
	return out, nil
}

type fakeOverrideRepo struct {
	overrides map[string]*models.DateOverride // keyed by date
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{overrides: map[string]*models.DateOverride{}}
}

func (r *fakeOverrideRepo) Upsert(_ context.Context, ov *models.DateOverride) error {
	r.overrides[ov.Date] = ov
	return nil
}

func (r *fakeOverrideRepo) UpsertMany(_ context.Context, ovs []models.DateOverride) error {
	for i := range ovs {
		ov := ovs[i]
		r.overrides[ov.Date] = &ov
	}
	return nil
}

func (r *fakeOverrideRepo) GetByProviderDate(_ context.Context, _ string, date string) (*models.DateOverride, error) {
	return r.overrides[date], nil
}

func (r *fakeOverrideRepo) ListRange(_ context.Context, _ string, from, to string) ([]models.DateOverride, error) {
	var out []models.DateOverride
	for _, ov := range r.overrides {
		if ov.Date >= from && ov.Date <= to {
			out = append(out, *ov)
		}
	}
	return out, nil
}

func (r *fakeOverrideRepo) Delete(_ context.Context, _ string, date string) error {
	delete(r.overrides, date)
	return nil
}

func newTestService() (*DefaultProviderService, *fakeProviderRepo, *fakeScheduleRepo, *fakeOverrideRepo) {
	provs := newFakeProviderRepo()
	schedules := newFakeScheduleRepo()
	overrides := newFakeOverrideRepo()
	svc := &DefaultProviderService{Repo: provs, ScheduleRepo: schedules, OverrideRepo: overrides}
	return svc, provs, schedules, overrides
}

func registration() models.ProviderRegistrationRequest {
	return models.ProviderRegistrationRequest{
		Name:         "Dr. Achieng",
		Email:        "Achieng@Example.com",
		Password:     "correct-horse",
		Specialty:    "pediatrics",
		SlotDuration: 30,
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, provs, _, _ := newTestService()
	ctx := context.Background()

	auth, err := svc.Register(ctx, registration())
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "achieng@example.com", auth.Email, "email is normalized")

	stored := provs.providers[auth.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.IsAvailable, "new providers accept bookings by default")
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)

	_, err = svc.Authenticate(ctx, "ACHIENG@example.com", "correct-horse")
	assert.NoError(t, err)

	_, err = svc.Authenticate(ctx, "achieng@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registration())
	assert.True(t, IsValidationError(err))
}

func TestGetByIDReturnsPublicView(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	auth, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	dto, err := svc.GetByID(ctx, auth.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, dto.SlotDuration)

	_, err = svc.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileValidatesSlotDuration(t *testing.T) {
	svc, provs, _, _ := newTestService()
	ctx := context.Background()

	auth, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	bad := 20
	err = svc.UpdateProfile(ctx, auth.ID, models.ProviderUpdateRequest{SlotDuration: &bad})
	assert.True(t, IsValidationError(err))

	good := 45
	err = svc.UpdateProfile(ctx, auth.ID, models.ProviderUpdateRequest{SlotDuration: &good})
	require.NoError(t, err)
	assert.Equal(t, 45, provs.updates[auth.ID]["slotDuration"])

	err = svc.UpdateProfile(ctx, auth.ID, models.ProviderUpdateRequest{})
	assert.True(t, IsValidationError(err), "empty update is rejected")
}
