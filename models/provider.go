package models

import "time"

// Provider represents a specialist offering bookable appointments.
type Provider struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name" binding:"required"`
	Email           string    `bson:"email" json:"email" binding:"required,email"`
	PasswordHash    string    `bson:"passwordHash" json:"-"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialty       string    `bson:"specialty" json:"specialty"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	SlotDuration    int       `bson:"slotDuration" json:"slotDuration"` // minutes per bookable slot: 15, 30, 45 or 60
	ConsultationFee float64   `bson:"consultationFee,omitempty" json:"consultationFee,omitempty"`
	IsAvailable     bool      `bson:"isAvailable" json:"isAvailable"` // global accepting-bookings toggle
	FCMToken        string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash       string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProviderDTO is the public view of a provider returned to booking clients.
type ProviderDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Bio             string  `json:"bio,omitempty"`
	SlotDuration    int     `json:"slotDuration"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`
	IsAvailable     bool    `json:"isAvailable"`
}

// Public returns the provider stripped down to client-safe fields.
func (p *Provider) Public() ProviderDTO {
	return ProviderDTO{
		ID:              p.ID,
		Name:            p.Name,
		Specialty:       p.Specialty,
		Bio:             p.Bio,
		SlotDuration:    p.SlotDuration,
		ConsultationFee: p.ConsultationFee,
		IsAvailable:     p.IsAvailable,
	}
}

// ProviderRegistrationRequest is the payload for provider signup.
type ProviderRegistrationRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	Phone        string  `json:"phone"`
	Specialty    string  `json:"specialty" binding:"required"`
	Bio          string  `json:"bio"`
	SlotDuration int     `json:"slotDuration" binding:"required,oneof=15 30 45 60"`
	Fee          float64 `json:"consultationFee"`
}

// ProviderUpdateRequest carries the mutable profile fields.
type ProviderUpdateRequest struct {
	Name         *string  `json:"name,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	SlotDuration *int     `json:"slotDuration,omitempty"`
	Fee          *float64 `json:"consultationFee,omitempty"`
	IsAvailable  *bool    `json:"isAvailable,omitempty"`
	FCMToken     *string  `json:"fcmToken,omitempty"`
}
