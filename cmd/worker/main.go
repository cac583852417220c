package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	subUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/infrastructure/config"
	"centro/internal/infrastructure/database"
	"centro/internal/infrastructure/email"
	"centro/internal/infrastructure/repository"
	"centro/internal/infrastructure/scheduler"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

// The worker runs the subscription schedulers standalone, for deployments
// where the API server is started with --no-schedulers.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, env == "development"); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting subscription worker", "environment", env)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		log.Errorw("failed to initialize business timezone", "error", err)
		os.Exit(1)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	db := database.Get()
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	activityRepo := repository.NewActivityRepository(db, log)
	organizationRepo := repository.NewOrganizationRepository(db, log)
	serviceRepo := repository.NewServiceRepository(db, log)

	expireUC := subUsecases.NewExpireSubscriptionsUseCase(subscriptionRepo, log)
	findExpiringUC := subUsecases.NewFindExpiringUseCase(subscriptionRepo, log)

	sender := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPass,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	expiry := scheduler.NewExpiryScheduler(
		expireUC,
		time.Duration(cfg.Scheduler.ExpireIntervalHours)*time.Hour,
		log,
	)
	reminder := scheduler.NewReminderScheduler(
		findExpiringUC,
		activityRepo,
		organizationRepo,
		serviceRepo,
		sender,
		time.Duration(cfg.Scheduler.ReminderIntervalHours)*time.Hour,
		cfg.Billing.ExpiringSoonDays,
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiry.Start(ctx)
	reminder.Start(ctx)

	log.Infow("subscription worker started",
		"expire_interval_hours", cfg.Scheduler.ExpireIntervalHours,
		"reminder_interval_hours", cfg.Scheduler.ReminderIntervalHours,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	expiry.Stop()
	reminder.Stop()

	log.Info("subscription worker stopped")
}
