package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalon/insights/internal/domain/analytics"
	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/biztime"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
)

// StatsCache stores computed stats by key. Implementations swallow their own
// failures; a failed Get is a miss.
type StatsCache interface {
	Get(ctx context.Context, key string) (*analytics.Stats, bool)
	Set(ctx context.Context, key string, stats *analytics.Stats)
}

// StatsKeyFunc derives the cache key of a filter at now.
type StatsKeyFunc func(f analytics.Filter, now time.Time) string

type GetDashboardStatsQuery struct {
	TimeRange string
	StartDate string
	EndDate   string
	Period    string
}

type GetDashboardStatsUseCase struct {
	source       conversation.Source
	cache        StatsCache
	cacheKey     StatsKeyFunc
	defaultRange analytics.TimeRange
	logger       logger.Interface
	now          func() time.Time
}

func NewGetDashboardStatsUseCase(
	source conversation.Source,
	cache StatsCache,
	cacheKey StatsKeyFunc,
	defaultRange analytics.TimeRange,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	if defaultRange == "" {
		defaultRange = analytics.DefaultTimeRange
	}
	return &GetDashboardStatsUseCase{
		source:       source,
		cache:        cache,
		cacheKey:     cacheKey,
		defaultRange: defaultRange,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, q GetDashboardStatsQuery) (*analytics.Stats, error) {
	filter, err := uc.parseFilter(q)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	key := uc.cacheKey(filter, now)
	if stats, ok := uc.cache.Get(ctx, key); ok {
		uc.logger.Debugw("dashboard stats served from cache", "key", key)
		return stats, nil
	}

	return uc.compute(ctx, filter, key, now)
}

// Refresh recomputes the stats for q and overwrites the cached entry,
// whether or not one exists.
func (uc *GetDashboardStatsUseCase) Refresh(ctx context.Context, q GetDashboardStatsQuery) (*analytics.Stats, error) {
	filter, err := uc.parseFilter(q)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	return uc.compute(ctx, filter, uc.cacheKey(filter, now), now)
}

func (uc *GetDashboardStatsUseCase) compute(ctx context.Context, filter analytics.Filter, key string, now time.Time) (*analytics.Stats, error) {
	var (
		messages []*conversation.Message
		feedback []*conversation.Feedback
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		messages, err = uc.source.ListMessages(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		feedback, err = uc.source.ListFeedback(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load dashboard data", "error", err)
		return nil, errors.NewUpstreamError(constants.ErrMsgCollectionLoad, err.Error())
	}

	stats := analytics.Compute(messages, feedback, filter, now)
	uc.cache.Set(ctx, key, &stats)

	uc.logger.Infow("dashboard stats computed",
		"time_range", filter.TimeRange,
		"total_questions", stats.TotalQuestions,
	)
	return &stats, nil
}

func (uc *GetDashboardStatsUseCase) parseFilter(q GetDashboardStatsQuery) (analytics.Filter, error) {
	timeRange, ok := analytics.ParseTimeRange(q.TimeRange, uc.defaultRange)
	if !ok {
		return analytics.Filter{}, errors.NewValidationError("timeRange must be one of all, today, week, month, year", q.TimeRange)
	}
	period, ok := analytics.ParsePeriod(q.Period)
	if !ok {
		return analytics.Filter{}, errors.NewValidationError("period must be thisWeek or thisMonth", q.Period)
	}
	return analytics.Filter{
		TimeRange: timeRange,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Period:    period,
	}, nil
}
