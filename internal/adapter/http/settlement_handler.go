package http

import (
	"net/http"
	"time"

	"reefer-backoffice/internal/usecase/settlement"
	"reefer-backoffice/pkg/id"
	"reefer-backoffice/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type SettlementHandler struct {
	responder
	uc *settlement.Usecase
}

func NewSettlementHandler(uc *settlement.Usecase, log logger.Logger) *SettlementHandler {
	return &SettlementHandler{responder: newResponder(log), uc: uc}
}

type createSettlementReq struct {
	OperatorID  uint64 `json:"operator_id" validate:"required"`
	UnitLabel   string `json:"unit_label" validate:"max=64"`
	PeriodFrom  string `json:"period_from" validate:"required,datetime=2006-01-02"`
	PeriodTo    string `json:"period_to" validate:"required,datetime=2006-01-02"`
	DepositDate string `json:"deposit_date" validate:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes"`
}

type assignTripsReq struct {
	LoadTripID uint64 `json:"load_trip_id" validate:"required"`
	// null or absent clears the DROP trip
	DropTripID *uint64 `json:"drop_trip_id"`
}

type addLineReq struct {
	Category    string `json:"category" validate:"required"`
	Concept     string `json:"concept" validate:"required,max=255"`
	PaymentType string `json:"payment_type" validate:"required"`
	Amount      string `json:"amount" validate:"required,money"`
	Notes       string `json:"notes"`
}

// settlementID reads and checks the :settlement_id path param.
func settlementID(c echo.Context) (string, bool) {
	sid := c.Param("settlement_id")
	return sid, id.Valid(sid)
}

func (h *SettlementHandler) Create(c echo.Context) error {
	var req createSettlementReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	// formats were checked by the validator
	from, _ := time.Parse(dateLayout, req.PeriodFrom)
	to, _ := time.Parse(dateLayout, req.PeriodTo)
	in := settlement.CreateInput{
		OperatorID: req.OperatorID,
		UnitLabel:  req.UnitLabel,
		PeriodFrom: from,
		PeriodTo:   to,
		Notes:      req.Notes,
	}
	if req.DepositDate != "" {
		d, _ := time.Parse(dateLayout, req.DepositDate)
		in.DepositDate = &d
	}

	s, err := h.uc.Create(c.Request().Context(), in, requestContext(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SettlementHandler) Get(c echo.Context) error {
	sid, ok := settlementID(c)
	if !ok {
		return badRequest(c, "invalid settlement_id path param")
	}
	dto, err := h.uc.Get(c.Request().Context(), sid)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SettlementHandler) AssignTrips(c echo.Context) error {
	sid, ok := settlementID(c)
	if !ok {
		return badRequest(c, "invalid settlement_id path param")
	}
	var req assignTripsReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	dto, err := h.uc.AssignTrips(c.Request().Context(), settlement.AssignInput{
		SettlementID: sid,
		LoadTripID:   req.LoadTripID,
		DropTripID:   req.DropTripID,
	}, requestContext(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SettlementHandler) AddLine(c echo.Context) error {
	sid, ok := settlementID(c)
	if !ok {
		return badRequest(c, "invalid settlement_id path param")
	}
	var req addLineReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	amount, _ := decimal.NewFromString(req.Amount)

	line, err := h.uc.AddLine(c.Request().Context(), settlement.AddLineInput{
		SettlementID: sid,
		Category:     req.Category,
		Concept:      req.Concept,
		PaymentType:  req.PaymentType,
		Amount:       amount,
		Notes:        req.Notes,
	}, requestContext(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, line)
}

func (h *SettlementHandler) RemoveLine(c echo.Context) error {
	sid, ok := settlementID(c)
	if !ok {
		return badRequest(c, "invalid settlement_id path param")
	}
	lineID, ok := uintParam(c, "line_id")
	if !ok {
		return badRequest(c, "invalid line_id path param")
	}
	if err := h.uc.RemoveLine(c.Request().Context(), sid, lineID, requestContext(c)); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SettlementHandler) MarkReady(c echo.Context) error {
	sid, ok := settlementID(c)
	if !ok {
		return badRequest(c, "invalid settlement_id path param")
	}
	dto, err := h.uc.MarkReady(c.Request().Context(), sid, requestContext(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SettlementHandler) Total(c echo.Context) error {
	sid, ok := settlementID(c)
	if !ok {
		return badRequest(c, "invalid settlement_id path param")
	}
	dto, err := h.uc.Total(c.Request().Context(), sid)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
