// Package migration brings the ticket schema up to date. Two strategies are
// available: gorm AutoMigrate for local work and versioned goose scripts.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/katalon/insights/internal/infrastructure/persistence/models"
	"github.com/katalon/insights/internal/shared/config"
	"github.com/katalon/insights/internal/shared/logger"
)

const (
	StrategyAuto  = "auto"
	StrategyGoose = "goose"
)

// Strategy migrates the ticket schema.
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// Models lists every table owned by the service.
func Models() []interface{} {
	return []interface{}{
		&models.TicketModel{},
	}
}

// New picks the strategy by name. driver selects the goose dialect and
// script directory.
func New(name, driver string, log logger.Interface) (Strategy, error) {
	switch name {
	case "", StrategyAuto:
		return NewAutoMigrateStrategy(log), nil
	case StrategyGoose:
		return NewGooseStrategy(driver, log)
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

// Run migrates db with the named strategy and logs the outcome.
func Run(db *gorm.DB, name, driver string, log logger.Interface) error {
	strategy, err := New(name, driver, log)
	if err != nil {
		return err
	}

	log.Infow("starting database migration", "strategy", strategy.GetName(), "driver", driver)
	if err := strategy.Migrate(db); err != nil {
		log.Errorw("migration failed", "strategy", strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", strategy.GetName(), err)
	}
	log.Infow("database migration completed", "strategy", strategy.GetName())
	return nil
}

func dialectFor(driver string) (string, error) {
	switch driver {
	case config.TicketDriverSQLite:
		return "sqlite3", nil
	case config.TicketDriverMySQL:
		return "mysql", nil
	default:
		return "", fmt.Errorf("driver %q has no migration scripts", driver)
	}
}
