package models

import "time"

// WeeklySchedule is a provider's default working window for one weekday.
// At most one record exists per (providerId, dayOfWeek).
type WeeklySchedule struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	DayOfWeek   int       `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	Start       int       `bson:"start" json:"start"`         // minutes from midnight (e.g. 540 for 09:00)
	End         int       `bson:"end" json:"end"`             // minutes from midnight
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	MaxPatients int       `bson:"maxPatients,omitempty" json:"maxPatients,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleDayRequest is one weekday entry in a schedule setup payload.
type ScheduleDayRequest struct {
	DayOfWeek   int    `json:"dayOfWeek" binding:"min=0,max=6"`
	StartTime   string `json:"startTime"` // "HH:MM"
	EndTime     string `json:"endTime"`   // "HH:MM"
	IsAvailable bool   `json:"isAvailable"`
	MaxPatients int    `json:"maxPatients"`
}

// SetScheduleRequest replaces a provider's weekly working windows.
type SetScheduleRequest struct {
	Days []ScheduleDayRequest `json:"days" binding:"required,min=1,max=7"`
}
