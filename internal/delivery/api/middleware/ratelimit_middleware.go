package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "natours/internal/delivery/context"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/infra/metrics"
	"natours/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"
)

// ErrTooManyRequests is returned once a client exhausts its window.
var ErrTooManyRequests = domainerrors.NewOperationalError(
	"Too many requests from this IP, please try again in an hour!",
	http.StatusTooManyRequests,
)

// RateLimitMiddleware counts requests per client IP.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, m *metrics.Metrics, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, metrics: m, logger: logger}
}

// Handle lets the request through when the limiter itself fails.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		result, err := m.limiter.Allow(ctx, c.RealIP())
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		header.Set(headerRateLimitLimit, strconv.Itoa(result.Limit))
		if result.Remaining >= 0 {
			header.Set(headerRateLimitRemaining, strconv.Itoa(result.Remaining))
		}
		if !result.Allowed {
			header.Set(headerRetryAfter, strconv.Itoa(int(result.ResetAfter.Seconds())))
			m.metrics.ObserveRateLimited()

			return ErrTooManyRequests
		}

		return next(c)
	}
}
