package worker

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	analyticsUsecases "github.com/katalon/insights/internal/application/analytics/usecases"
	"github.com/katalon/insights/internal/domain/analytics"
	"github.com/katalon/insights/internal/shared/logger"
)

type recordingRefresher struct {
	ranges []string
	failOn string
}

func (r *recordingRefresher) Refresh(_ context.Context, q analyticsUsecases.GetDashboardStatsQuery) (*analytics.Stats, error) {
	r.ranges = append(r.ranges, q.TimeRange)
	if q.TimeRange == r.failOn {
		return nil, stderrors.New("throttled")
	}
	return &analytics.Stats{}, nil
}

func TestRefreshAll(t *testing.T) {
	r := &recordingRefresher{}

	n := refreshAll(context.Background(), r, logger.NewNop())

	assert.Equal(t, 5, n)
	assert.Equal(t, []string{"all", "today", "week", "month", "year"}, r.ranges)
}

func TestRefreshAll_ContinuesPastFailure(t *testing.T) {
	r := &recordingRefresher{failOn: "today"}

	n := refreshAll(context.Background(), r, logger.NewNop())

	assert.Equal(t, 4, n)
	assert.Len(t, r.ranges, 5)
}
