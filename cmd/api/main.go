package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"goldensage/config"
	_ "goldensage/docs" // Swagger docs
	assistantHTTP "goldensage/internal/assistant/delivery/http"
	assistantUC "goldensage/internal/assistant/usecase"
	"goldensage/internal/health"
	healthHTTP "goldensage/internal/health/delivery/http"
	healthMongo "goldensage/internal/health/repository/mongo"
	healthUC "goldensage/internal/health/usecase"
	"goldensage/internal/httpserver"
	notificationHTTP "goldensage/internal/notification/delivery/http"
	notificationMongo "goldensage/internal/notification/repository/mongo"
	notificationUC "goldensage/internal/notification/usecase"
	sosHTTP "goldensage/internal/sos/delivery/http"
	sosMongo "goldensage/internal/sos/repository/mongo"
	sosUC "goldensage/internal/sos/usecase"
	taskHTTP "goldensage/internal/task/delivery/http"
	taskMongo "goldensage/internal/task/repository/mongo"
	taskUC "goldensage/internal/task/usecase"
	userHTTP "goldensage/internal/user/delivery/http"
	userMongo "goldensage/internal/user/repository/mongo"
	userUC "goldensage/internal/user/usecase"
	"goldensage/pkg/gcalendar"
	"goldensage/pkg/gemini"
	"goldensage/pkg/log"
	"goldensage/pkg/mongodb"
	"goldensage/pkg/scope"
	"goldensage/pkg/sms"
)

// @title       GoldenSage API
// @description Senior-care backend: guardian/patient/unity accounts, health dashboards, SOS alerts and the Sage voice assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GoldenSage...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, closeDB, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer closeDB()

	// 4. Auth
	jwtManager := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessDuration)

	// 5. Repositories
	userRepo := userMongo.New(db, logger)
	taskRepo := taskMongo.New(db, logger)
	healthRepo := healthMongo.New(db, logger)
	notificationRepo := notificationMongo.New(db, logger)
	sosRepo := sosMongo.New(db, logger)

	// 6. Optional integrations

	// Gemini (optional: the assistant degrades to the keyword tier)
	var llm gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		llm = gemini.NewClient(cfg.Gemini.APIKey).WithModel(cfg.Gemini.Model)
		logger.Infof(ctx, "Gemini enabled (model %s)", cfg.Gemini.Model)
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, assistant runs keyword-only")
	}

	// SNS SMS dispatch (optional: SOS still persists alerts without it)
	var smsSender sms.Sender
	if cfg.SMS.Enabled {
		sender, smsErr := sms.NewSNSSender(ctx, cfg.SMS.Region, cfg.SMS.SenderID)
		if smsErr != nil {
			logger.Warnf(ctx, "SMS dispatch not available (optional): %v", smsErr)
		} else {
			smsSender = sender
			logger.Info(ctx, "SMS dispatch enabled")
		}
	}

	// Google Calendar (optional: bookings succeed without events)
	var calendarClient health.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Use cases
	userUseCase := userUC.New(logger, userRepo, jwtManager)
	taskUseCase := taskUC.New(taskRepo, logger)
	notificationUseCase := notificationUC.New(logger, notificationRepo)
	sosUseCase := sosUC.New(logger, sosRepo, userRepo, notificationUseCase, smsSender, cfg.SMS.HospitalNumbers)
	healthUseCase := healthUC.New(logger, healthRepo, userRepo, taskUseCase, notificationUseCase, calendarClient, cfg.GoogleCalendar.CalendarID)
	assistantUseCase := assistantUC.New(
		logger, llm,
		taskUseCase, sosUseCase,
		cfg.Assistant.HistorySize, cfg.Assistant.HistoryTurns,
	)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		JWTManager: jwtManager,

		UserHandler:         userHTTP.New(logger, userUseCase),
		TaskHandler:         taskHTTP.New(logger, taskUseCase),
		HealthHandler:       healthHTTP.New(logger, healthUseCase),
		NotificationHandler: notificationHTTP.New(logger, notificationUseCase),
		SOSHandler:          sosHTTP.New(logger, sosUseCase),
		AssistantHandler:    assistantHTTP.New(logger, assistantUseCase),

		AssistantRateLimit: cfg.Assistant.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
