package booking

import (
	"context"
	"fmt"
	"sync"

	appointmentRepo "carebook/database/repository/appointment"
	"carebook/models"
)

// In-memory repository fakes backing the engine tests. The appointment fake
// reproduces the atomic overlap-check-then-insert contract of the mongo
// implementation, including the ErrSlotTaken sentinel.

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo(provs ...*models.Provider) *fakeProviderRepo {
	r := &fakeProviderRepo{providers: map[string]*models.Provider{}}
	for _, p := range provs {
		r.providers[p.ID] = p
	}
	return r
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
	if _, ok := r.providers[id]; !ok {
		return fmt.Errorf("provider %s not found", id)
	}
	return nil
}

func (r *fakeProviderRepo) SetTokenHash(_ context.Context, id, hash string) error {
	if p, ok := r.providers[id]; ok {
		p.TokenHash = hash
	}
	return nil
}

type fakeScheduleRepo struct {
	schedules map[string]map[int]*models.WeeklySchedule // providerID -> dayOfWeek
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[string]map[int]*models.WeeklySchedule{}}
}

func (r *fakeScheduleRepo) Upsert(_ context.Context, ws *models.WeeklySchedule) error {
	if r.schedules[ws.ProviderID] == nil {
		r.schedules[ws.ProviderID] = map[int]*models.WeeklySchedule{}
	}
	r.schedules[ws.ProviderID][ws.DayOfWeek] = ws
	return nil
}

func (r *fakeScheduleRepo) GetByProviderDay(_ context.Context, providerID string, day int) (*models.WeeklySchedule, error) {
	return r.schedules[providerID][day], nil
}

func (r *fakeScheduleRepo) ListByProvider(_ context.Context, providerID string) ([]models.WeeklySchedule, error) {
	var out []models.WeeklySchedule
	for _, ws := range r.schedules[providerID] {
		out = append(out, *ws)
	}
	return out, nil
}

type fakeOverrideRepo struct {
	overrides map[string]*models.DateOverride // providerID|date
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{overrides: map[string]*models.DateOverride{}}
}

func overrideKey(providerID, date string) string { return providerID + "|" + date }

func (r *fakeOverrideRepo) Upsert(_ context.Context, ov *models.DateOverride) error {
	r.overrides[overrideKey(ov.ProviderID, ov.Date)] = ov
	return nil
}

func (r *fakeOverrideRepo) UpsertMany(_ context.Context, ovs []models.DateOverride) error {
	for i := range ovs {
		ov := ovs[i]
		r.overrides[overrideKey(ov.ProviderID, ov.Date)] = &ov
	}
	return nil
}

func (r *fakeOverrideRepo) GetByProviderDate(_ context.Context, providerID, date string) (*models.DateOverride, error) {
	return r.overrides[overrideKey(providerID, date)], nil
}

func (r *fakeOverrideRepo) ListRange(_ context.Context, providerID, from, to string) ([]models.DateOverride, error) {
	var out []models.DateOverride
	for _, ov := range r.overrides {
		if ov.ProviderID == providerID && ov.Date >= from && ov.Date <= to {
			out = append(out, *ov)
		}
	}
	return out, nil
}

func (r *fakeOverrideRepo) Delete(_ context.Context, providerID, date string) error {
	delete(r.overrides, overrideKey(providerID, date))
	return nil
}

type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
}

func newFakeAppointmentRepo(appts ...*models.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{appts: map[string]*models.Appointment{}}
	for _, a := range appts {
		r.appts[a.ID] = a
	}
	return r
}

func (r *fakeAppointmentRepo) CreateIfFree(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appts {
		if existing.ProviderID != appt.ProviderID || existing.Date != appt.Date {
			continue
		}
		if existing.Status.Occupies() && existing.Overlaps(appt.Start, appt.End) {
			return appointmentRepo.ErrSlotTaken
		}
	}
	cp := *appt
	r.appts[appt.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) ListOccupying(_ context.Context, providerID, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ProviderID == providerID && a.Date == date && a.Status.Occupies() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByProviderDate(_ context.Context, providerID, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ProviderID == providerID && a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByUser(_ context.Context, userID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListUpcomingByProvider(_ context.Context, providerID, fromDate string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ProviderID == providerID && a.Date >= fromDate && a.Status.Occupies() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	a.Status = status
	return nil
}

// newTestEngine wires an engine over fresh fakes with a weekly Monday-Friday
// 09:00-17:00 schedule for the given provider.
func newTestEngine(prov *models.Provider) (*DefaultBookingEngine, *fakeScheduleRepo, *fakeOverrideRepo, *fakeAppointmentRepo) {
	schedules := newFakeScheduleRepo()
	for day := 1; day <= 5; day++ {
		_ = schedules.Upsert(context.Background(), &models.WeeklySchedule{
			ID:          fmt.Sprintf("ws-%d", day),
			ProviderID:  prov.ID,
			DayOfWeek:   day,
			Start:       540, // 09:00
			End:         1020, // 17:00
			IsAvailable: true,
		})
	}
	overrides := newFakeOverrideRepo()
	appts := newFakeAppointmentRepo()

	engine := &DefaultBookingEngine{
		ProviderRepo:    newFakeProviderRepo(prov),
		ScheduleRepo:    schedules,
		OverrideRepo:    overrides,
		AppointmentRepo: appts,
	}
	return engine, schedules, overrides, appts
}

func testProvider() *models.Provider {
	return &models.Provider{
		ID:           "prov-1",
		Name:         "Dr. Achieng",
		Email:        "achieng@example.com",
		Specialty:    "pediatrics",
		SlotDuration: 30,
		IsAvailable:  true,
	}
}
