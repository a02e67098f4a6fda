package middleware

import (
	"fmt"
	"net/http"

	"github.com/ulule/limiter/v3"
	stdlibmiddleware "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit applies a per-client-IP rate limit. rate uses the limiter
// format, e.g. "100-M" for 100 requests per minute. The counters live
// in process memory, which is enough for a single instance.
func RateLimit(rate string) (func(http.Handler) http.Handler, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("parse rate limit %q: %w", rate, err)
	}

	instance := limiter.New(memorystore.NewStore(), parsed, limiter.WithTrustForwardHeader(true))
	wrapped := stdlibmiddleware.NewMiddleware(instance)

	return func(next http.Handler) http.Handler {
		return wrapped.Handler(next)
	}, nil
}
