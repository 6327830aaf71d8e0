package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /healthz and /readyz.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler returns a HealthHandler probing db.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz answers as long as the process can serve requests.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz answers 200 once PostgreSQL accepts a ping, else 503 with the
// driver error.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ReadinessResponse{
			Status:   "unavailable",
			Database: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, ReadinessResponse{Status: "ready", Database: "ok"})
}
