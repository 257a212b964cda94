package models

// Slot is one fixed-width bookable interval computed from a provider's
// effective working window. Slots are derived on demand and never persisted.
type Slot struct {
	Start       int  `json:"start"` // minutes from midnight
	End         int  `json:"end"`
	IsAvailable bool `json:"isAvailable"`
}

// SlotView is the wire form of a Slot with "HH:MM" clock times.
type SlotView struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// DaySlotsResponse is the payload behind the slot-picker UI.
type DaySlotsResponse struct {
	ProviderID   string     `json:"providerId"`
	Date         string     `json:"date"`
	SlotDuration int        `json:"slotDuration"`
	Slots        []SlotView `json:"slots"`
}
