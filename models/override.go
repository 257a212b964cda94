package models

import "time"

// DateOverride is a per-date exception that supersedes the weekly schedule.
// Unique per (providerId, date). When IsAvailable is false the whole date is
// blocked. When IsAvailable is true and Start/End are set they replace the
// weekly window for that date only; nil Start/End means the weekly default
// still governs the date.
type DateOverride struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	Date        string    `bson:"date" json:"date"` // "2006-01-02"
	Start       *int      `bson:"start,omitempty" json:"start,omitempty"`
	End         *int      `bson:"end,omitempty" json:"end,omitempty"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// SetOverrideRequest sets or replaces the override for a single date.
type SetOverrideRequest struct {
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime"` // optional "HH:MM"; empty keeps the weekly window
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason"`
}

// BulkOverrideRequest applies one override shape across a date range,
// restricted to the selected weekdays.
type BulkOverrideRequest struct {
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	DaysOfWeek  []int  `json:"daysOfWeek" binding:"required,min=1,dive,min=0,max=6"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason"`
}
