package middleware

import (
	"strconv"
	"time"

	"page-quiz/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latencies per matched route.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		// c.Route() now points at the handler that served the request.
		path := c.Route().Path
		if path == "" {
			path = "unknown"
		}
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return nil
	}
}
