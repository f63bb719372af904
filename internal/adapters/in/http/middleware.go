package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storefront/internal/pkg/logger"
)

// RequestLogger attaches a request-scoped logger carrying the request id and
// logs one line per request. It runs after echo's RequestID middleware.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			started := time.Now()
			req := c.Request()

			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = req.Header.Get(echo.HeaderXRequestID)
			}
			c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), log, id)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := zapcore.InfoLevel
			switch {
			case status >= 500:
				level = zapcore.ErrorLevel
			case status >= 400:
				level = zapcore.WarnLevel
			}

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(started)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			logger.FromContext(c.Request().Context()).Log(level, "request", fields...)
			return nil
		}
	}
}
