package booking

import (
	"context"
	"sync"
	"testing"

	"carebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMonday = "2026-09-07" // inside the weekly Mon-Fri window
	testSunday = "2026-09-06" // no weekly record
)

func bookReq(date, start, end string) models.BookAppointmentRequest {
	return models.BookAppointmentRequest{
		ProviderID: "prov-1",
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}
}

func TestTryBookSuccess(t *testing.T) {
	engine, _, _, appts := newTestEngine(testProvider())

	appt, err := engine.TryBook(context.Background(), "user-1", bookReq(testMonday, "10:00", "10:30"))
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, 600, appt.Start)
	assert.Equal(t, 630, appt.End)
	assert.Equal(t, "user-1", appt.UserID)
	assert.NotEmpty(t, appt.ID)

	stored, err := appts.GetByID(context.Background(), appt.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestTryBookInvalidInput(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.BookAppointmentRequest
	}{
		{"bad date", bookReq("07-09-2026", "10:00", "10:30")},
		{"bad start time", bookReq(testMonday, "10am", "10:30")},
		{"bad end time", bookReq(testMonday, "10:00", "")},
		{"end before start", bookReq(testMonday, "11:00", "10:30")},
		{"zero-length interval", bookReq(testMonday, "10:00", "10:00")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.TryBook(ctx, "user-1", tc.req)
			assert.Equal(t, CodeInvalidInput, ErrCode(err))
		})
	}
}

func TestTryBookUnknownProvider(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())

	req := bookReq(testMonday, "10:00", "10:30")
	req.ProviderID = "nobody"
	_, err := engine.TryBook(context.Background(), "user-1", req)
	assert.Equal(t, CodeProviderUnavailable, ErrCode(err))
}

func TestTryBookProviderToggledOff(t *testing.T) {
	prov := testProvider()
	prov.IsAvailable = false
	engine, _, _, _ := newTestEngine(prov)

	_, err := engine.TryBook(context.Background(), "user-1", bookReq(testMonday, "10:00", "10:30"))
	assert.Equal(t, CodeProviderUnavailable, ErrCode(err))
}

func TestTryBookOffDay(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())

	_, err := engine.TryBook(context.Background(), "user-1", bookReq(testSunday, "10:00", "10:30"))
	assert.Equal(t, CodeProviderUnavailable, ErrCode(err))
}

func TestTryBookBlockedOverride(t *testing.T) {
	engine, _, overrides, _ := newTestEngine(testProvider())
	_ = overrides.Upsert(context.Background(), &models.DateOverride{
		ID: "ov-1", ProviderID: "prov-1", Date: testMonday, IsAvailable: false,
	})

	_, err := engine.TryBook(context.Background(), "user-1", bookReq(testMonday, "10:00", "10:30"))
	assert.Equal(t, CodeProviderUnavailable, ErrCode(err))
}

func TestTryBookOutsideWorkingHours(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())
	ctx := context.Background()

	// Weekly window is 09:00-17:00.
	_, err := engine.TryBook(ctx, "user-1", bookReq(testMonday, "08:30", "09:00"))
	assert.Equal(t, CodeOutsideWorkingHours, ErrCode(err))

	_, err = engine.TryBook(ctx, "user-1", bookReq(testMonday, "16:45", "17:15"))
	assert.Equal(t, CodeOutsideWorkingHours, ErrCode(err))
}

func TestTryBookOverrideWindowGovernsDate(t *testing.T) {
	engine, _, overrides, _ := newTestEngine(testProvider())
	ctx := context.Background()

	// Shortened day: 09:00-12:00 instead of the weekly 09:00-17:00.
	_ = overrides.Upsert(ctx, &models.DateOverride{
		ID: "ov-1", ProviderID: "prov-1", Date: testMonday,
		IsAvailable: true, Start: intPtr(540), End: intPtr(720),
	})

	_, err := engine.TryBook(ctx, "user-1", bookReq(testMonday, "14:00", "14:30"))
	assert.Equal(t, CodeOutsideWorkingHours, ErrCode(err),
		"afternoon is inside the weekly window but outside the override")

	_, err = engine.TryBook(ctx, "user-1", bookReq(testMonday, "10:00", "10:30"))
	assert.NoError(t, err)
}

func TestTryBookConflictRejected(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())
	ctx := context.Background()

	_, err := engine.TryBook(ctx, "user-1", bookReq(testMonday, "10:00", "10:30"))
	require.NoError(t, err)

	// Identical interval.
	_, err = engine.TryBook(ctx, "user-2", bookReq(testMonday, "10:00", "10:30"))
	assert.Equal(t, CodeSlotAlreadyBooked, ErrCode(err))

	// Partial overlap.
	_, err = engine.TryBook(ctx, "user-2", bookReq(testMonday, "10:15", "10:45"))
	assert.Equal(t, CodeSlotAlreadyBooked, ErrCode(err))

	// Touching boundary is not a conflict.
	_, err = engine.TryBook(ctx, "user-2", bookReq(testMonday, "10:30", "11:00"))
	assert.NoError(t, err)
}

func TestTryBookCancelledAppointmentFreesInterval(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())
	ctx := context.Background()

	appt, err := engine.TryBook(ctx, "user-1", bookReq(testMonday, "10:00", "10:30"))
	require.NoError(t, err)

	_, err = engine.UpdateStatus(ctx, "user-1", "user", appt.ID, models.StatusCancelled)
	require.NoError(t, err)

	_, err = engine.TryBook(ctx, "user-2", bookReq(testMonday, "10:00", "10:30"))
	assert.NoError(t, err, "cancelled appointment must not occupy the interval")
}

func TestTryBookConcurrentAttemptsOneWinner(t *testing.T) {
	engine, _, _, _ := newTestEngine(testProvider())
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.TryBook(ctx, "user-1", bookReq(testMonday, "10:00", "10:30"))
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case ErrCode(err) == CodeSlotAlreadyBooked || ErrCode(err) == CodeConcurrencyConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactly one booking must win")
	assert.Equal(t, attempts-1, conflicts)
}
