package http

import (
	"net/http"

	"reefer-backoffice/internal/usecase/evidence"
	"reefer-backoffice/pkg/logger"

	"github.com/labstack/echo/v4"
)

type EvidenceHandler struct {
	responder
	uc *evidence.Usecase
}

func NewEvidenceHandler(uc *evidence.Usecase, log logger.Logger) *EvidenceHandler {
	return &EvidenceHandler{responder: newResponder(log), uc: uc}
}

type decideReq struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	// Falls back to the Ax-Actor-Id header when omitted.
	Reviewer string `json:"reviewer" validate:"max=64"`
	Notes    string `json:"notes"`
}

func (h *EvidenceHandler) Decide(c echo.Context) error {
	id, ok := uintParam(c, "trip_id")
	if !ok {
		return badRequest(c, "invalid trip_id path param")
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	rc := requestContext(c)
	if req.Reviewer == "" && rc.Actor != nil {
		req.Reviewer = *rc.Actor
	}

	dto, err := h.uc.Decide(c.Request().Context(), evidence.DecideInput{
		TripID:   id,
		Decision: req.Decision,
		Reviewer: req.Reviewer,
		Notes:    req.Notes,
	}, rc)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EvidenceHandler) Status(c echo.Context) error {
	id, ok := uintParam(c, "trip_id")
	if !ok {
		return badRequest(c, "invalid trip_id path param")
	}
	dto, err := h.uc.StatusOf(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EvidenceHandler) History(c echo.Context) error {
	id, ok := uintParam(c, "trip_id")
	if !ok {
		return badRequest(c, "invalid trip_id path param")
	}
	items, err := h.uc.History(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
