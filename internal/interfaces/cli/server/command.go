package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/infrastructure/database"
	"github.com/katalon/insights/internal/infrastructure/migration"
	"github.com/katalon/insights/internal/infrastructure/persistence/seeds"
	"github.com/katalon/insights/internal/infrastructure/repository"
	"github.com/katalon/insights/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/katalon/insights/internal/interfaces/http"
	sharedConfig "github.com/katalon/insights/internal/shared/config"
	"github.com/katalon/insights/internal/shared/goroutine"
	"github.com/katalon/insights/internal/shared/version"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the insights HTTP API serving conversations, feedback, dashboard stats and tickets.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Server mode override (debug, release, test)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" && env == "" {
		env = mapEnvToGinMode(envVar)
	}

	rt, err := bootstrap.Load(cmd.Context(), env, configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg, log := rt.Config, rt.Log
	log.Infow("starting server",
		"mode", cfg.Server.Mode,
		"version", version.Current(),
		"ticket_driver", cfg.TicketStore.Driver,
		"redis", cfg.Redis.Enabled)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	tickets, err := openTicketStore(cmd.Context(), cfg.TicketStore, &cfg.Database, rt)
	if err != nil {
		return err
	}
	defer database.Close()

	ids, err := ticket.NewIDGenerator(cfg.TicketStore.IDStrategy)
	if err != nil {
		return err
	}

	router := httpRouter.NewRouter(httpRouter.Dependencies{
		Source:     rt.Source,
		Tickets:    tickets,
		TicketIDs:  ids,
		StatsCache: rt.StatsCache(),
		Redis:      rt.Redis,
	}, cfg, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		log.Errorw("failed to start server", "error", err)
		return err
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// openTicketStore builds the ticket repository for the configured driver,
// migrating and seeding it as configured.
func openTicketStore(ctx context.Context, store sharedConfig.TicketStoreConfig, dbCfg *sharedConfig.DatabaseConfig, rt *bootstrap.Runtime) (ticket.Repository, error) {
	var repo ticket.Repository

	switch store.Driver {
	case sharedConfig.TicketDriverMemory:
		repo = repository.NewMemoryTicketRepository()
	case sharedConfig.TicketDriverSQLite, sharedConfig.TicketDriverMySQL:
		if err := database.Init(store.Driver, dbCfg); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := migration.Run(database.Get(), dbCfg.Migration, store.Driver, rt.Log.Named("migration")); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		repo = repository.NewTicketRepository(database.Get())
	default:
		return nil, fmt.Errorf("unknown ticket store driver %q", store.Driver)
	}

	if store.Seed {
		n, err := seeds.SeedTickets(ctx, repo)
		if err != nil {
			return nil, fmt.Errorf("failed to seed tickets: %w", err)
		}
		if n > 0 {
			rt.Log.Infow("seeded reference tickets", "count", n)
		}
	}

	return repo, nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
