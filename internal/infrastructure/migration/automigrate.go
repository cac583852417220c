package migration

import (
	"fmt"

	"gorm.io/gorm"

	"centro/internal/infrastructure/persistence/models"
	"centro/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the model structs. Used in
// development and sqlite-backed test runs.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm automigrate", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		s.logger.Errorw("automigrate failed", "error", err)
		return fmt.Errorf("automigrate failed: %w", err)
	}

	s.logger.Infow("automigrate completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persistence model in schema order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrganizationModel{},
		&models.ActivityModel{},
		&models.UserModel{},
		&models.ServiceModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.AnnouncementModel{},
	}
}
