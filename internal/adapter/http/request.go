package http

import (
	"strconv"
	"strings"

	"reefer-backoffice/internal/adapter/middleware"
	"reefer-backoffice/internal/domain/audit"

	"github.com/labstack/echo/v4"
)

// requestContext captures who made the request for the audit trail.
// A missing or malformed actor is recorded as anonymous; the idempotency
// guard already rejects malformed actors on writes.
func requestContext(c echo.Context) audit.RequestContext {
	req := c.Request()
	rc := audit.RequestContext{
		IP:        c.RealIP(),
		Path:      req.URL.Path,
		Method:    req.Method,
		UserAgent: req.UserAgent(),
	}
	if actor, ok := middleware.ActorID(req.Header.Get(middleware.HeaderActorID)); ok && actor != "" {
		rc.Actor = &actor
	}
	return rc
}

func uintParam(c echo.Context, name string) (uint64, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	return n, err == nil && n > 0
}
