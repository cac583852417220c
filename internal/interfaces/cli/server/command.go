package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	subUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/infrastructure/cache"
	"centro/internal/infrastructure/config"
	"centro/internal/infrastructure/database"
	"centro/internal/infrastructure/email"
	"centro/internal/infrastructure/migration"
	"centro/internal/infrastructure/permission"
	"centro/internal/infrastructure/persistence/seeds"
	"centro/internal/infrastructure/repository"
	"centro/internal/infrastructure/scheduler"
	httpRouter "centro/internal/interfaces/http"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

var (
	env            string
	autoMigrate    bool
	seedCatalog    bool
	skipSchedulers bool
)

const rbacModelPath = "./configs/rbac_model.conf"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Centro admin console API with the configured environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&seedCatalog, "seed", false, "Seed the service catalog from configs/seeds.yaml")
	cmd.Flags().BoolVar(&skipSchedulers, "no-schedulers", false, "Do not start the expiry and reminder schedulers in-process")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warn("auto-migration is enabled in production, this is not recommended")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Info("migrations completed")
	}

	if seedCatalog {
		if err := seeds.SeedCatalog(database.Get(), "./configs/seeds.yaml"); err != nil {
			return fmt.Errorf("catalog seeding failed: %w", err)
		}
		log.Info("catalog seeded")
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	enforcer, err := permission.NewEnforcer(database.Get(), rbacModelPath, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := permission.InitConsolePermissions(enforcer, log); err != nil {
		return fmt.Errorf("failed to seed permissions: %w", err)
	}

	router := httpRouter.NewRouter(database.Get(), redisClient, enforcer, cfg, log)
	router.SetupRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var schedulers []interface{ Stop() }
	if !skipSchedulers {
		schedulers = startSchedulers(ctx, cfg, log)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	for _, s := range schedulers {
		s.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

func startSchedulers(ctx context.Context, cfg *config.Config, log logger.Interface) []interface{ Stop() } {
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

	expiry.Start(ctx)
	reminder.Start(ctx)

	return []interface{ Stop() }{expiry, reminder}
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
