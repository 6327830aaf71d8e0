package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/watch-price-tracker/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// quietPaths are probe endpoints whose successful requests are logged once.
var quietPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header, the echo context and a request-scoped logger on the
// request context. Probe endpoints log their first success and every failure.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var seen sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			reqLog := log.With("request_id", reqID)
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), reqLog)))

			err := next(c)
			if err != nil {
				// Let echo render the error so the logged status is the real one.
				c.Error(err)
			}

			status := c.Response().Status
			path := req.URL.Path
			_, quiet := quietPaths[path]
			if quiet && status < 400 {
				if _, logged := seen.LoadOrStore(path, struct{}{}); logged {
					return nil
				}
			}

			level := slog.LevelInfo
			switch {
			case status >= 500 && !quiet:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			reqLog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", req.Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)

			return nil
		}
	}
}
