package bigdata

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

const (
	// ProactiveRate is the client-side throttle in requests per second.
	// The API publishes no hard quota; this keeps bursts polite.
	ProactiveRate = 2

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter throttles outgoing requests and recognises server-side
// rate limit responses.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// CheckResponse inspects a response for rate limiting. A 429 maps onto
// domain.ErrRateLimited, carrying the server's Retry-After when present.
func (r *RateLimiter) CheckResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			return fmt.Errorf("%w: retry after %s",
				domain.ErrRateLimited, time.Duration(seconds)*time.Second)
		}
	}
	return domain.ErrRateLimited
}
