// cmd/migrate/main.go
//
// Development helper that creates or updates the schema with GORM's
// AutoMigrate. Production deployments should manage schema changes with a
// dedicated migration tool instead.
package main

import (
	"log"
	"log/slog"
	"os"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if config.Cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Tenant{},
		&model.User{},
		&model.Challenge{},
		&model.Enrollment{},
		&model.Checkin{},
		&model.Proof{},
		&model.ChallengeOffer{},
		&model.OfferConversion{},
		&model.PendingPayment{},
		&model.CompletedPayment{},
		&model.RevenueShare{},
		&model.WhopSubscription{},
		&model.MonthlyUsage{},
		&model.InternalNotification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	slog.Info("Schema migration completed.")
}
