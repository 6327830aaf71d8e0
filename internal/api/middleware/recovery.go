package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

const stackSize = 4096

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace with the request ID, and returns a 500 Internal Server Error to the
// client. A panic after the response was committed only gets logged.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				buf := make([]byte, stackSize)
				n := runtime.Stack(buf, false)

				reqID, _ := c.Get("request_id").(string)
				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"request_id", reqID,
					"stack", string(buf[:n]),
				)

				if c.Response().Committed {
					err = nil
					return
				}
				err = c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}()
			return next(c)
		}
	}
}
