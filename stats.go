package unsplash

import (
	"context"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/models"
)

// StatsService covers the /stats endpoints
type StatsService service

// Total returns platform totals since launch
func (s *StatsService) Total(ctx context.Context, opts ...RequestOption) Result[models.TotalStats] {
	return call[models.TotalStats](ctx, s.client, operation{"stats", "total", "Failed to fetch total stats."}, khttp.CallOptions{
		Endpoint: "/stats/total",
		Options:  callOptions(nil, opts),
	})
}

// Month returns platform totals over the past 30 days
func (s *StatsService) Month(ctx context.Context, opts ...RequestOption) Result[models.MonthStats] {
	return call[models.MonthStats](ctx, s.client, operation{"stats", "month", "Failed to fetch monthly stats."}, khttp.CallOptions{
		Endpoint: "/stats/month",
		Options:  callOptions(nil, opts),
	})
}
