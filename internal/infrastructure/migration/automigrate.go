package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/katalon/insights/internal/shared/logger"
)

// AutoMigrateStrategy creates or alters tables from the gorm models.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.auto")}
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := Models()
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	s.logger.Infow("auto migrate finished", "models", len(all))
	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
