package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebook/config"
	"carebook/cron"
	"carebook/database"
	appointmentRepoPkg "carebook/database/repository/appointment"
	overrideRepoPkg "carebook/database/repository/override"
	providerRepoPkg "carebook/database/repository/provider"
	scheduleRepoPkg "carebook/database/repository/schedule"
	userRepoPkg "carebook/database/repository/user"
	"carebook/handlers"
	"carebook/middleware"
	"carebook/routes"
	bookingSvc "carebook/services/booking"
	"carebook/services/notification"
	providerSvc "carebook/services/provider"
	"carebook/services/tasks"
	userSvc "carebook/services/user"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	ensureIndexes(logger)

	// Repositories.
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	overrideRepo := overrideRepoPkg.NewMongoOverrideRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	notifSvc, err := notification.NewDefaultNotificationService(userRepo, providerRepo)
	if err != nil {
		logger.Fatal("Failed to build notification service", zap.Error(err))
	}

	// Services.
	bookingEngine := &bookingSvc.DefaultBookingEngine{
		ProviderRepo:    providerRepo,
		ScheduleRepo:    scheduleRepo,
		OverrideRepo:    overrideRepo,
		AppointmentRepo: appointmentRepo,
		Notification:    notifSvc,
		Reminders:       tasks.NewAsynqReminderScheduler(),
		Cache:           utils.GetCacheClient(),
	}
	providerService := &providerSvc.DefaultProviderService{
		Repo:         providerRepo,
		ScheduleRepo: scheduleRepo,
		OverrideRepo: overrideRepo,
	}
	userService := &userSvc.DefaultUserService{Repo: userRepo}

	// Handlers.
	providerHandler := &handlers.ProviderHandler{Service: providerService}
	userHandler := &handlers.UserHandler{Service: userService}
	bookingHandler := &handlers.BookingHandler{Service: bookingEngine}

	hb := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		ProviderRepo: providerRepo,

		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetUserProfileHandler:   userHandler.GetUserProfileHandler,
		UpdateFCMTokenHandler:   userHandler.UpdateFCMTokenHandler,

		RegisterProviderHandler:     providerHandler.RegisterProviderHandler,
		AuthenticateProviderHandler: providerHandler.AuthenticateProviderHandler,
		GetProviderHandler:          providerHandler.GetProviderHandler,
		UpdateProviderHandler:       providerHandler.UpdateProviderHandler,

		SetScheduleHandler:   providerHandler.SetScheduleHandler,
		GetScheduleHandler:   providerHandler.GetScheduleHandler,
		SetOverrideHandler:   providerHandler.SetOverrideHandler,
		BulkOverridesHandler: providerHandler.BulkOverridesHandler,
		ClearOverrideHandler: providerHandler.ClearOverrideHandler,
		ListOverridesHandler: providerHandler.ListOverridesHandler,

		GetSlotsHandler:                 bookingHandler.GetSlotsHandler,
		BookAppointmentHandler:          bookingHandler.BookAppointmentHandler,
		UpdateAppointmentStatusHandler:  bookingHandler.UpdateAppointmentStatusHandler,
		ListUserAppointmentsHandler:     bookingHandler.ListUserAppointmentsHandler,
		ListProviderAppointmentsHandler: bookingHandler.ListProviderAppointmentsHandler,
	}

	// Background reminder worker.
	go cron.InitReminderWorker(notifSvc, appointmentRepo)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware())
	routes.RegisterRoutes(router, hb)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func ensureIndexes(logger *zap.Logger) {
	for name, ensure := range map[string]func() error{
		"providers":    providerRepoPkg.EnsureIndexes,
		"users":        userRepoPkg.EnsureIndexes,
		"schedules":    scheduleRepoPkg.EnsureIndexes,
		"overrides":    overrideRepoPkg.EnsureIndexes,
		"appointments": appointmentRepoPkg.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Fatal("Failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
}
