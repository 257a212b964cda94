package booking

import (
	"context"
	"testing"

	"carebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAppointment(appts *fakeAppointmentRepo, status models.AppointmentStatus) *models.Appointment {
	appt := &models.Appointment{
		ID:         "appt-1",
		ProviderID: "prov-1",
		UserID:     "user-1",
		Date:       testMonday,
		Start:      600,
		End:        630,
		Status:     status,
	}
	appts.appts[appt.ID] = appt
	return appt
}

func TestUpdateStatusProviderTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.AppointmentStatus
		to      models.AppointmentStatus
		allowed bool
	}{
		{"confirm pending", models.StatusPending, models.StatusConfirmed, true},
		{"complete confirmed", models.StatusConfirmed, models.StatusCompleted, true},
		{"cancel pending", models.StatusPending, models.StatusCancelled, true},
		{"cancel confirmed", models.StatusConfirmed, models.StatusCancelled, true},
		{"no-show pending", models.StatusPending, models.StatusNoShow, true},
		{"no-show confirmed", models.StatusConfirmed, models.StatusNoShow, true},
		{"complete pending skips confirmation", models.StatusPending, models.StatusCompleted, false},
		{"revive cancelled", models.StatusCancelled, models.StatusConfirmed, false},
		{"revive completed", models.StatusCompleted, models.StatusPending, false},
		{"revive no-show", models.StatusNoShow, models.StatusConfirmed, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _, appts := newTestEngine(testProvider())
			seedAppointment(appts, tc.from)

			updated, err := engine.UpdateStatus(context.Background(), "prov-1", "provider", "appt-1", tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)
			} else {
				assert.Equal(t, CodeInvalidInput, ErrCode(err))
			}
		})
	}
}

func TestUpdateStatusUserMayOnlyCancelOwn(t *testing.T) {
	ctx := context.Background()

	t.Run("own cancellation allowed", func(t *testing.T) {
		engine, _, _, appts := newTestEngine(testProvider())
		seedAppointment(appts, models.StatusPending)
		updated, err := engine.UpdateStatus(ctx, "user-1", "user", "appt-1", models.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, updated.Status)
	})

	t.Run("user cannot confirm", func(t *testing.T) {
		engine, _, _, appts := newTestEngine(testProvider())
		seedAppointment(appts, models.StatusPending)
		_, err := engine.UpdateStatus(ctx, "user-1", "user", "appt-1", models.StatusConfirmed)
		assert.Equal(t, CodeInvalidInput, ErrCode(err))
	})

	t.Run("someone else's appointment", func(t *testing.T) {
		engine, _, _, appts := newTestEngine(testProvider())
		seedAppointment(appts, models.StatusPending)
		_, err := engine.UpdateStatus(ctx, "user-2", "user", "appt-1", models.StatusCancelled)
		assert.Equal(t, CodeInvalidInput, ErrCode(err))
	})
}

func TestUpdateStatusWrongProvider(t *testing.T) {
	engine, _, _, appts := newTestEngine(testProvider())
	seedAppointment(appts, models.StatusPending)

	_, err := engine.UpdateStatus(context.Background(), "prov-2", "provider", "appt-1", models.StatusConfirmed)
	assert.Equal(t, CodeInvalidInput, ErrCode(err))
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())

	_, err := engine.UpdateStatus(context.Background(), "prov-1", "provider", "ghost", models.StatusConfirmed)
	assert.Equal(t, CodeInvalidInput, ErrCode(err))
}

func TestUpdateStatusUnknownStatusValue(t *testing.T) {
	engine, _, _, appts := newTestEngine(testProvider())
	seedAppointment(appts, models.StatusPending)

	_, err := engine.UpdateStatus(context.Background(), "prov-1", "provider", "appt-1", "rescheduled")
	assert.Equal(t, CodeInvalidInput, ErrCode(err))
}

func TestListUserAppointments(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())
	ctx := context.Background()

	_, err := engine.TryBook(ctx, "user-1", bookReq(testMonday, "10:00", "10:30"))
	require.NoError(t, err)
	_, err = engine.TryBook(ctx, "user-1", bookReq(testMonday, "11:00", "11:30"))
	require.NoError(t, err)
	_, err = engine.TryBook(ctx, "user-2", bookReq(testMonday, "12:00", "12:30"))
	require.NoError(t, err)

	appts, err := engine.ListUserAppointments(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, appts, 2)
}

func TestListProviderAppointmentsByDate(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())
	ctx := context.Background()

	_, err := engine.TryBook(ctx, "user-1", bookReq(testMonday, "10:00", "10:30"))
	require.NoError(t, err)

	appts, err := engine.ListProviderAppointments(ctx, "prov-1", testMonday)
	require.NoError(t, err)
	assert.Len(t, appts, 1)

	_, err = engine.ListProviderAppointments(ctx, "prov-1", "someday")
	assert.Equal(t, CodeInvalidInput, ErrCode(err))
}
