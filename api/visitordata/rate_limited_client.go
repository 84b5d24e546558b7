package visitordata

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedVisitorDataAPI wraps a VisitorDataAPI with rate limiting so
// the periodic refresher and manual refresh triggers cannot flood the
// upstream data source.
type RateLimitedVisitorDataAPI struct {
	api     VisitorDataAPI
	limiter *rate.Limiter
	ctx     context.Context
}

// NewRateLimitedVisitorDataAPI creates a new rate limited client.
// rps is the maximum requests per second allowed (can be fractional for
// less than 1 request per second), burst the maximum burst size.
func NewRateLimitedVisitorDataAPI(ctx context.Context, api VisitorDataAPI, rps float64, burst int) *RateLimitedVisitorDataAPI {
	return &RateLimitedVisitorDataAPI{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		ctx:     ctx,
	}
}

// FetchVisitorCSV fetches the CSV, respecting rate limits.
func (r *RateLimitedVisitorDataAPI) FetchVisitorCSV() (string, error) {
	if err := r.limiter.Wait(r.ctx); err != nil {
		return "", fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.api.FetchVisitorCSV()
}

// Ensure the wrapper satisfies the API interface.
var _ VisitorDataAPI = (*RateLimitedVisitorDataAPI)(nil)
