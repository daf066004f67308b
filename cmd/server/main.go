// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/handlers"
	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/repository"
	"go_5_challenge_hub/internal/service"
	"go_5_challenge_hub/internal/whop"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config is loaded.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === slog setup based on config ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName))

	// Database (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency injection
	tenantRepo := repository.NewGormTenantRepository()
	userRepo := repository.NewGormUserRepository()
	challengeRepo := repository.NewGormChallengeRepository()
	enrollmentRepo := repository.NewGormEnrollmentRepository()
	offerRepo := repository.NewGormOfferRepository()
	paymentRepo := repository.NewGormPaymentRepository()
	subRepo := repository.NewGormSubscriptionRepository()
	notificationRepo := repository.NewGormNotificationRepository()

	whopClient := whop.NewClient(&config.Cfg)
	promoClient := whop.NewPromoClient(&config.Cfg)
	mailer := service.NewMailer(&config.Cfg)

	notificationService := service.NewNotificationService(db, notificationRepo, whopClient, mailer, &config.Cfg)
	identityService := service.NewIdentityService(db, tenantRepo, userRepo, whopClient, &config.Cfg)
	challengeService := service.NewChallengeService(db, challengeRepo, enrollmentRepo, paymentRepo, subRepo, userRepo, notificationService, &config.Cfg)
	enrollmentService := service.NewEnrollmentService(db, challengeRepo, enrollmentRepo, notificationService)
	offerService := service.NewOfferService(db, offerRepo, challengeRepo, tenantRepo, promoClient, &config.Cfg)
	paymentService := service.NewPaymentService(db, tenantRepo, challengeRepo, enrollmentRepo, paymentRepo, whopClient, notificationService)
	analyticsService := service.NewAnalyticsService(db, challengeRepo, paymentRepo, whopClient)

	challengeHandler := handlers.NewChallengeHandler(challengeService, logger)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, logger)
	offerHandler := handlers.NewOfferHandler(offerService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	webhookHandler := handlers.NewWebhookHandler(paymentService, logger)
	meHandler := handlers.NewMeHandler(analyticsService, notificationService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		// Webhooks authenticate through their payload, not through the
		// identity middleware.
		r.Post("/webhooks/whop", webhookHandler.PostWhopWebhook)

		// --- Protected routes (resolved identity required) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.IdentityContextMiddleware(identityService))

			r.Get("/me", meHandler.GetMe)
			r.Get("/me/enrollments", enrollmentHandler.GetMyEnrollments)
			r.Get("/notifications", meHandler.GetNotifications)
			r.Post("/notifications/{notificationID}/read", meHandler.PostNotificationRead)

			r.Route("/challenges", func(r chi.Router) {
				r.Get("/", challengeHandler.GetChallenges)
				r.Get("/{challengeID}", challengeHandler.GetChallenge)

				// Participation (members and admins)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireParticipant)
					r.Post("/{challengeID}/enrollments", enrollmentHandler.PostEnrollment)
				})

				// Management (admins only)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", challengeHandler.PostChallenge)
					r.Patch("/{challengeID}", challengeHandler.PatchChallenge)
					r.Delete("/{challengeID}", challengeHandler.DeleteChallenge)
					r.Post("/{challengeID}/winners", challengeHandler.PostWinners)
					r.Get("/{challengeID}/enrollments", enrollmentHandler.GetChallengeEnrollments)
					r.Get("/{challengeID}/offers", offerHandler.GetChallengeOffers)
				})
			})

			r.Route("/enrollments", func(r chi.Router) {
				r.Use(middleware.RequireParticipant)
				r.Post("/{enrollmentID}/checkins", enrollmentHandler.PostCheckin)
				r.Get("/{enrollmentID}/checkins", enrollmentHandler.GetCheckins)
			})

			r.Route("/offers", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireParticipant)
					r.Post("/redeem", offerHandler.PostRedeem)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", offerHandler.PostOffer)
					r.Delete("/{offerID}", offerHandler.DeleteOffer)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireParticipant)
				r.Post("/payments/charges", paymentHandler.PostCharge)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/analytics", meHandler.GetAnalytics)
			})
		})
	})

	// Server with graceful shutdown
	server := &http.Server{
		Addr:    config.Cfg.Server.Port,
		Handler: r,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}
	slog.Info("Server exited.")
}
