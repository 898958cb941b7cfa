package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalon/insights/internal/infrastructure/config"
	"github.com/katalon/insights/internal/infrastructure/database"
	"github.com/katalon/insights/internal/infrastructure/migration"
	"github.com/katalon/insights/internal/infrastructure/persistence/seeds"
	"github.com/katalon/insights/internal/infrastructure/repository"
	sharedConfig "github.com/katalon/insights/internal/shared/config"
	"github.com/katalon/insights/internal/shared/db"
	"github.com/katalon/insights/internal/shared/logger"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Ticket store migration tools",
		Long:  `Manage the ticket store schema of the sqlite and mysql drivers, and load the reference tickets.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Server mode override (debug, release, test)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Long:  `Bring the ticket table up to date using the configured strategy (database.migration).`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back goose migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show goose migration status",
		RunE:  runStatus,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the reference tickets into an empty ticket table",
		RunE:  runSeed,
	}
}

type environment struct {
	cfg *config.Config
	log logger.Interface
}

func initEnv() (*environment, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	driver := cfg.TicketStore.Driver
	if driver == sharedConfig.TicketDriverMemory {
		return nil, fmt.Errorf("ticket_store.driver is %q; migrations need sqlite or mysql", driver)
	}

	if err := database.Init(driver, &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &environment{cfg: cfg, log: logger.NewLogger().Named("migrate")}, nil
}

func (e *environment) goose() (*migration.GooseStrategy, error) {
	return migration.NewGooseStrategy(e.cfg.TicketStore.Driver, e.log)
}

func runUp(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	e.log.Infow("running up migrations", "driver", e.cfg.TicketStore.Driver, "strategy", e.cfg.Database.Migration)

	if err := migration.Run(database.Get(), e.cfg.Database.Migration, e.cfg.TicketStore.Driver, e.log); err != nil {
		e.log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	e.log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	g, err := e.goose()
	if err != nil {
		return err
	}

	e.log.Infow("running down migrations", "steps", steps)

	if err := g.MigrateDown(database.Get(), steps); err != nil {
		e.log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	e.log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	g, err := e.goose()
	if err != nil {
		return err
	}

	version, err := g.Version(database.Get())
	if err != nil {
		e.log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Driver:          %s\n", e.cfg.TicketStore.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := g.Status(database.Get()); err != nil {
		e.log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	repo := repository.NewTicketRepository(database.Get())
	tm := db.NewTransactionManager(database.Get())

	var inserted int
	err = tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		n, err := seeds.SeedTickets(ctx, repo)
		inserted = n
		return err
	})
	if err != nil {
		e.log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	e.log.Infow("seeding completed", "inserted", inserted)
	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d reference tickets\n", inserted)
	return nil
}
