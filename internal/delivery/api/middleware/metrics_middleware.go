package middleware

import (
	"time"

	"natours/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records the status and latency of every request by route pattern.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" || route == "/*" {
			route = unmatchedRoute
		}
		m.metrics.ObserveHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
