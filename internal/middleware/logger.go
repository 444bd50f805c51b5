package middleware

import (
	"strconv"
	"time"

	"github.com/collabmatch/backend/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func LoggerMiddleware(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		elapsed := time.Since(start)

		metrics.RequestDuration.WithLabelValues(
			c.Method(), c.Route().Path, strconv.Itoa(status),
		).Observe(elapsed.Seconds())

		reqID, _ := c.Locals(CtxRequestID).(string)
		log.Info("request",
			zap.String("request_id", reqID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("ip", c.IP()),
		)

		return err
	}
}
