package worker

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	analyticsUsecases "github.com/katalon/insights/internal/application/analytics/usecases"
	"github.com/katalon/insights/internal/domain/analytics"
	"github.com/katalon/insights/internal/infrastructure/cache"
	"github.com/katalon/insights/internal/interfaces/cli/bootstrap"
	"github.com/katalon/insights/internal/shared/logger"
)

var (
	env        string
	configPath string
	interval   time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Keep the dashboard stats cache warm",
		Long:  `Periodically recompute the dashboard stats for every preset time range and store them in Redis, so dashboard loads rarely scan DynamoDB.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Server mode override (debug, release, test)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().DurationVar(&interval, "interval", 45*time.Second, "Refresh interval; keep it below dashboard.stats_cache_ttl_seconds")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Load(cmd.Context(), env, configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	if rt.Redis == nil {
		return fmt.Errorf("the stats worker needs redis.enabled=true")
	}

	log := rt.Log.Named("worker")
	statsUC := analyticsUsecases.NewGetDashboardStatsUseCase(
		rt.Source,
		rt.StatsCache(),
		cache.StatsKey,
		analytics.TimeRange(rt.Config.Dashboard.DefaultTimeRange),
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infow("stats worker started", "interval", interval)
	refreshAll(ctx, statsUC, log)

	for {
		select {
		case <-ticker.C:
			refreshAll(ctx, statsUC, log)
		case sig := <-sigChan:
			log.Infow("received signal, shutting down", "signal", sig)
			return nil
		}
	}
}

type statsRefresher interface {
	Refresh(ctx context.Context, q analyticsUsecases.GetDashboardStatsQuery) (*analytics.Stats, error)
}

// refreshAll recomputes every preset range. A failed range is logged and
// the rest still run.
func refreshAll(ctx context.Context, uc statsRefresher, log logger.Interface) int {
	refreshed := 0
	for _, r := range analytics.TimeRanges {
		if _, err := uc.Refresh(ctx, analyticsUsecases.GetDashboardStatsQuery{TimeRange: string(r)}); err != nil {
			log.Errorw("failed to refresh dashboard stats", "time_range", r, "error", err)
			continue
		}
		refreshed++
	}
	log.Debugw("dashboard stats refreshed", "ranges", refreshed)
	return refreshed
}
