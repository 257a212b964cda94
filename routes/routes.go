package routes

import (
	"net/http"
	"time"

	"carebook/handlers"
	"carebook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers booking-client endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetUserProfileHandler)
		api.PUT("/device-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterProviderRoutes registers provider account and calendar endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.RegisterProviderHandler)
		api.POST("/login", hb.AuthenticateProviderHandler)

		// Public read endpoints: profile, weekly schedule, overrides, slots.
		api.GET("/id/:id", hb.GetProviderHandler)
		api.GET("/id/:id/schedule", hb.GetScheduleHandler)
		api.GET("/id/:id/availability", hb.ListOverridesHandler)
		api.GET("/id/:id/slots", hb.GetSlotsHandler)

		// Calendar management requires provider authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		protected.PATCH("/profile", hb.UpdateProviderHandler)
		protected.PUT("/schedule", hb.SetScheduleHandler)
		protected.PUT("/availability", hb.SetOverrideHandler)
		protected.POST("/availability/bulk", hb.BulkOverridesHandler)
		protected.DELETE("/availability/:date", hb.ClearOverrideHandler)
		protected.GET("/appointments", hb.ListProviderAppointmentsHandler)
		protected.PATCH("/appointments/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints for clients.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.BookAppointmentHandler)
		api.GET("", hb.ListUserAppointmentsHandler)
		api.PATCH("/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Carebook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
}
