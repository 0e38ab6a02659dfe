package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Check pings one backing dependency, e.g. the database or Redis.
type Check func(ctx context.Context) error

type Handler struct{ checks map[string]Check }

func NewHandler(checks map[string]Check) *Handler { return &Handler{checks: checks} }

// Health reports 503 when any dependency check fails.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	code, status := http.StatusOK, "ok"
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			code, status = http.StatusServiceUnavailable, "degraded"
			continue
		}
		deps[name] = "ok"
	}
	return c.JSON(code, map[string]any{
		"status": status,
		"deps":   deps,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
