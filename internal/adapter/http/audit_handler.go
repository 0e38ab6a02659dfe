package http

import (
	"net/http"
	"strconv"

	"reefer-backoffice/internal/usecase/audit"
	"reefer-backoffice/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AuditHandler struct {
	responder
	q *audit.Query
}

func NewAuditHandler(q *audit.Query, log logger.Logger) *AuditHandler {
	return &AuditHandler{responder: newResponder(log), q: q}
}

// List returns the change history of one entity, newest first. ?limit=N caps the page.
func (h *AuditHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return badRequest(c, "invalid limit query param")
		}
		limit = n
	}
	items, err := h.q.List(c.Request().Context(), c.Param("entity_type"), c.Param("entity_id"), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
