package handlers

import (
	providerRepoPkg "carebook/database/repository/provider"
	userRepoPkg "carebook/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the
// repositories the auth middleware checks token hashes against.
type HandlerBundle struct {
	UserRepo     userRepoPkg.UserRepository
	ProviderRepo providerRepoPkg.ProviderRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetUserProfileHandler   gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc

	// Provider endpoints
	RegisterProviderHandler     gin.HandlerFunc
	AuthenticateProviderHandler gin.HandlerFunc
	GetProviderHandler          gin.HandlerFunc
	UpdateProviderHandler       gin.HandlerFunc

	// Calendar endpoints
	SetScheduleHandler   gin.HandlerFunc
	GetScheduleHandler   gin.HandlerFunc
	SetOverrideHandler   gin.HandlerFunc
	BulkOverridesHandler gin.HandlerFunc
	ClearOverrideHandler gin.HandlerFunc
	ListOverridesHandler gin.HandlerFunc

	// Booking endpoints
	GetSlotsHandler                 gin.HandlerFunc
	BookAppointmentHandler          gin.HandlerFunc
	UpdateAppointmentStatusHandler  gin.HandlerFunc
	ListUserAppointmentsHandler     gin.HandlerFunc
	ListProviderAppointmentsHandler gin.HandlerFunc
}
