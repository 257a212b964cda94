package booking

import (
	"testing"

	"carebook/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestResolveWindow(t *testing.T) {
	weekly := &models.WeeklySchedule{Start: 540, End: 1020, IsAvailable: true}

	tests := []struct {
		name     string
		override *models.DateOverride
		weekly   *models.WeeklySchedule
		want     *Window
	}{
		{
			name:   "no override falls back to weekly",
			weekly: weekly,
			want:   &Window{Start: 540, End: 1020},
		},
		{
			name:     "blocked override wins over weekly",
			override: &models.DateOverride{IsAvailable: false},
			weekly:   weekly,
			want:     nil,
		},
		{
			name:     "override with explicit times replaces weekly window",
			override: &models.DateOverride{IsAvailable: true, Start: intPtr(600), End: intPtr(780)},
			weekly:   weekly,
			want:     &Window{Start: 600, End: 780},
		},
		{
			name:     "available override without times keeps weekly window",
			override: &models.DateOverride{IsAvailable: true},
			weekly:   weekly,
			want:     &Window{Start: 540, End: 1020},
		},
		{
			name: "no data at all means closed",
			want: nil,
		},
		{
			name:   "weekly day toggled off means closed",
			weekly: &models.WeeklySchedule{Start: 540, End: 1020, IsAvailable: false},
			want:   nil,
		},
		{
			name:     "explicit override on a weekly off-day opens the date",
			override: &models.DateOverride{IsAvailable: true, Start: intPtr(600), End: intPtr(720)},
			weekly:   &models.WeeklySchedule{Start: 540, End: 1020, IsAvailable: false},
			want:     &Window{Start: 600, End: 720},
		},
		{
			name:     "available override without times on an off-day stays closed",
			override: &models.DateOverride{IsAvailable: true},
			weekly:   &models.WeeklySchedule{IsAvailable: false},
			want:     nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveWindow(tc.override, tc.weekly)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := &Window{Start: 540, End: 1020}

	assert.True(t, w.Contains(540, 570), "slot at window start")
	assert.True(t, w.Contains(990, 1020), "slot ending exactly at window end")
	assert.False(t, w.Contains(510, 540), "slot entirely before the window")
	assert.False(t, w.Contains(1000, 1030), "slot overrunning the window end")
	assert.False(t, w.Contains(530, 560), "slot straddling the window start")
}
