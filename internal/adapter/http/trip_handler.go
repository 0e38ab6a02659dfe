package http

import (
	"net/http"
	"strconv"

	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/usecase/settlement"
	"reefer-backoffice/internal/usecase/trip"
	"reefer-backoffice/pkg/logger"

	"github.com/labstack/echo/v4"
)

type TripHandler struct {
	responder
	uc          *trip.Usecase
	settlements *settlement.Usecase
}

func NewTripHandler(uc *trip.Usecase, settlements *settlement.Usecase, log logger.Logger) *TripHandler {
	return &TripHandler{responder: newResponder(log), uc: uc, settlements: settlements}
}

type createTripReq struct {
	OperatorID         uint64  `json:"operator_id" validate:"required"`
	TruckID            uint64  `json:"truck_id" validate:"required"`
	BoxID              uint64  `json:"box_id" validate:"required"`
	TransferOperatorID *uint64 `json:"transfer_operator_id"`
	ClientID           uint64  `json:"client_id" validate:"required"`
	RouteID            *uint64 `json:"route_id"`
	Notes              string  `json:"notes"`
}

type updateTripReq struct {
	OperatorID         *uint64 `json:"operator_id"`
	TruckID            *uint64 `json:"truck_id"`
	BoxID              *uint64 `json:"box_id"`
	TransferOperatorID *uint64 `json:"transfer_operator_id"`
	ClientID           *uint64 `json:"client_id"`
	RouteID            *uint64 `json:"route_id"`
	Notes              *string `json:"notes"`
}

// Timestamps stay raw strings; the state machine parses them.
type changeStatusReq struct {
	Status               string `json:"status"`
	ArrivalOriginAt      string `json:"arrival_origin_at"`
	DepartureOriginAt    string `json:"departure_origin_at"`
	ArrivalDestinationAt string `json:"arrival_destination_at"`
}

func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req createTripReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	t, err := h.uc.Create(c.Request().Context(), trip.CreateInput(req), requestContext(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TripHandler) GetTrip(c echo.Context) error {
	id, ok := uintParam(c, "trip_id")
	if !ok {
		return badRequest(c, "invalid trip_id path param")
	}
	if raw := c.QueryParam("include_deleted"); raw != "" {
		all, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "invalid include_deleted query param")
		}
		if all {
			t, err := h.uc.GetIncludingDeleted(c.Request().Context(), id)
			if err != nil {
				return h.fail(c, err)
			}
			return c.JSON(http.StatusOK, archivedTrip{Trip: t, Deleted: t.DeletedAt.Valid})
		}
	}
	t, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

type archivedTrip struct {
	*domainTrip.Trip
	Deleted bool `json:"deleted"`
}

func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, ok := uintParam(c, "trip_id")
	if !ok {
		return badRequest(c, "invalid trip_id path param")
	}
	var req updateTripReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	t, err := h.uc.Update(c.Request().Context(), id, trip.UpdateInput(req), requestContext(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, ok := uintParam(c, "trip_id")
	if !ok {
		return badRequest(c, "invalid trip_id path param")
	}
	if err := h.uc.Delete(c.Request().Context(), id, requestContext(c)); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TripHandler) ChangeStatus(c echo.Context) error {
	id, ok := uintParam(c, "trip_id")
	if !ok {
		return badRequest(c, "invalid trip_id path param")
	}
	var req changeStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	dto, err := h.uc.ChangeStatus(c.Request().Context(), trip.ChangeStatusInput{
		TripID:               id,
		Target:               req.Status,
		ArrivalOriginAt:      req.ArrivalOriginAt,
		DepartureOriginAt:    req.DepartureOriginAt,
		ArrivalDestinationAt: req.ArrivalDestinationAt,
	}, requestContext(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// DropCandidates lists the trips that may be paired as DROP with the given LOAD trip.
func (h *TripHandler) DropCandidates(c echo.Context) error {
	id, ok := uintParam(c, "trip_id")
	if !ok {
		return badRequest(c, "invalid trip_id path param")
	}
	trips, err := h.settlements.ListDropCandidates(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": trips})
}
