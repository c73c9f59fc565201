// File: motorover/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"motorover/config"
	"motorover/cron"
	"motorover/database"
	bookingRepoPkg "motorover/database/repository/booking"
	inquiryRepoPkg "motorover/database/repository/inquiry"
	tourRepoPkg "motorover/database/repository/tour"
	"motorover/handlers"
	"motorover/middleware"
	"motorover/routes"
	"motorover/services/notify"
	"motorover/services/payment"
	"motorover/services/submission"
	"motorover/services/tour"
	"motorover/services/wizard"
	"motorover/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	inquiryRepo := inquiryRepoPkg.NewMongoInquiryRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	tourRepo := tourRepoPkg.NewMongoTourRepo()

	// services.
	mailer := notify.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
		config.AppConfig.EmailFrom,
	)
	crmClient := notify.NewHTTPCRMClient(
		config.AppConfig.CRMAPIURL,
		config.AppConfig.CRMAPIKey,
		10*time.Second,
		logger,
	)
	notificationService, err := notify.NewDefaultNotificationService(
		mailer, crmClient, config.AppConfig.SupportEmail, logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	paymentAdapter := payment.NewAdapter(logger)

	submissionService := &submission.DefaultSubmissionService{
		Inquiries: inquiryRepo,
		Bookings:  bookingRepo,
		Payments:  paymentAdapter,
		Notifier:  notificationService,
		Currency:  config.AppConfig.Currency,
		Logger:    logger,
	}

	sessionStore := wizard.NewRedisSessionStore(utils.GetSessionCacheClient(), utils.WizardSessionTTL)
	wizardService := &wizard.DefaultWizardService{
		Store:     sessionStore,
		Submitter: submissionService,
		Logger:    logger,
	}

	tourService := &tour.DefaultTourService{
		Repo:   tourRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	// handlers.
	inquiryHandler := handlers.NewInquiryHandler(submissionService, logger)
	bookingHandler := handlers.NewBookingHandler(submissionService, logger)
	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	tourHandler := handlers.NewTourHandler(tourService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SubmitInquiryHandler: inquiryHandler.SubmitInquiryHandler,
		CreateBookingHandler: bookingHandler.CreateBookingHandler,

		StartWizardSession:  wizardHandler.StartWizardSession,
		GetWizardSession:    wizardHandler.GetWizardSession,
		UpdateWizardSession: wizardHandler.UpdateWizardSession,
		ConfirmWizard:       wizardHandler.ConfirmWizard,
		CancelWizardSession: wizardHandler.CancelWizardSession,

		ListToursHandler: tourHandler.ListToursHandler,
		GetTourHandler:   tourHandler.GetTourHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitTourStatusWorker(tourService)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
