package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/katalon/insights/internal/shared/logger"
)

//go:embed scripts/sqlite/*.sql scripts/mysql/*.sql
var scripts embed.FS

// goose keeps its dialect and filesystem in package state.
var gooseMu sync.Mutex

// GooseStrategy applies the embedded SQL scripts for one dialect.
type GooseStrategy struct {
	dialect string
	dir     string
	logger  logger.Interface
}

func NewGooseStrategy(driver string, log logger.Interface) (*GooseStrategy, error) {
	dialect, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &GooseStrategy{
		dialect: dialect,
		dir:     path.Join("scripts", driver),
		logger:  log.With("component", "migration.goose"),
	}, nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	return s.withGoose(db, func(sqlDB *sql.DB) error {
		from, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}

		if err := goose.Up(sqlDB, s.dir); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		to, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}
		s.logger.Infow("goose migration finished", "from_version", from, "to_version", to)
		return nil
	})
}

// MigrateDown rolls back steps migrations.
func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	return s.withGoose(db, func(sqlDB *sql.DB) error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, s.dir); err != nil {
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		return nil
	})
}

func (s *GooseStrategy) Version(db *gorm.DB) (int64, error) {
	var version int64
	err := s.withGoose(db, func(sqlDB *sql.DB) error {
		v, err := goose.GetDBVersion(sqlDB)
		version = v
		return err
	})
	return version, err
}

// Status prints the applied and pending scripts through the logger.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	return s.withGoose(db, func(sqlDB *sql.DB) error {
		return goose.Status(sqlDB, s.dir)
	})
}

func (s *GooseStrategy) withGoose(db *gorm.DB, fn func(*sql.DB) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	goose.SetLogger(gooseLogger{s.logger})
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn(sqlDB)
}

// gooseLogger adapts logger.Interface to goose's printf logger.
type gooseLogger struct {
	logger logger.Interface
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
