package booking

import (
	"testing"

	"carebook/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildSlotsSlicing(t *testing.T) {
	// 09:00-17:00 at 30 minutes is exactly 16 slots.
	slots := BuildSlots(&Window{Start: 540, End: 1020}, 30, nil)
	assert.Len(t, slots, 16)
	assert.Equal(t, 540, slots[0].Start)
	assert.Equal(t, 570, slots[0].End)
	assert.Equal(t, 990, slots[15].Start)
	assert.Equal(t, 1020, slots[15].End)
	for _, s := range slots {
		assert.True(t, s.IsAvailable)
	}
}

func TestBuildSlotsDropsPartialTrailingSlot(t *testing.T) {
	// A 100-minute window at 45-minute slots yields floor(100/45) = 2 slots;
	// the 20 leftover minutes produce nothing.
	slots := BuildSlots(&Window{Start: 600, End: 700}, 45, nil)
	assert.Len(t, slots, 2)
	assert.Equal(t, 690, slots[1].End)
}

func TestBuildSlotsWindowShorterThanDuration(t *testing.T) {
	slots := BuildSlots(&Window{Start: 600, End: 640}, 45, nil)
	assert.Empty(t, slots)
}

func TestBuildSlotsNilWindow(t *testing.T) {
	assert.Nil(t, BuildSlots(nil, 30, nil))
}

func TestBuildSlotsOverlapFlagging(t *testing.T) {
	window := &Window{Start: 540, End: 720} // 09:00-12:00, six 30-min slots
	occupying := []models.Appointment{
		{Start: 600, End: 630, Status: models.StatusConfirmed}, // 10:00-10:30
	}

	slots := BuildSlots(window, 30, occupying)
	assert.Len(t, slots, 6)

	for _, s := range slots {
		if s.Start == 600 {
			assert.False(t, s.IsAvailable, "booked slot must be flagged")
		} else {
			assert.True(t, s.IsAvailable, "slot starting at %d should be free", s.Start)
		}
	}
}

func TestBuildSlotsTouchingBoundariesDoNotConflict(t *testing.T) {
	// A booking ending at 10:30 leaves the 10:30-11:00 slot free, and one
	// starting at 11:00 leaves 10:30-11:00 free too.
	window := &Window{Start: 600, End: 720}
	occupying := []models.Appointment{
		{Start: 600, End: 630, Status: models.StatusPending},
		{Start: 660, End: 690, Status: models.StatusPending},
	}

	slots := BuildSlots(window, 30, occupying)
	assert.Len(t, slots, 4)
	assert.False(t, slots[0].IsAvailable)
	assert.True(t, slots[1].IsAvailable, "10:30-11:00 only touches its neighbours")
	assert.False(t, slots[2].IsAvailable)
	assert.True(t, slots[3].IsAvailable)
}

func TestBuildSlotsMisalignedAppointmentBlocksBothSlots(t *testing.T) {
	// 10:15-10:45 straddles the 10:00-10:30 and 10:30-11:00 slots.
	window := &Window{Start: 600, End: 720}
	occupying := []models.Appointment{
		{Start: 615, End: 645, Status: models.StatusConfirmed},
	}

	slots := BuildSlots(window, 30, occupying)
	assert.False(t, slots[0].IsAvailable)
	assert.False(t, slots[1].IsAvailable)
	assert.True(t, slots[2].IsAvailable)
	assert.True(t, slots[3].IsAvailable)
}

func TestBuildSlotsNonOccupyingStatusesIgnored(t *testing.T) {
	window := &Window{Start: 600, End: 660}
	for _, status := range []models.AppointmentStatus{
		models.StatusCancelled, models.StatusCompleted, models.StatusNoShow,
	} {
		slots := BuildSlots(window, 30, []models.Appointment{
			{Start: 600, End: 630, Status: status},
		})
		assert.True(t, slots[0].IsAvailable, "status %s must not occupy", status)
	}
}
