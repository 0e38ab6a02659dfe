package http

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the back-office API on g.
func RegisterRoutes(g *echo.Group, trips *TripHandler, ev *EvidenceHandler, st *SettlementHandler, au *AuditHandler) {
	g.POST("/trips", trips.CreateTrip)
	g.GET("/trips/:trip_id", trips.GetTrip)
	g.PATCH("/trips/:trip_id", trips.UpdateTrip)
	g.DELETE("/trips/:trip_id", trips.DeleteTrip)
	g.POST("/trips/:trip_id/status", trips.ChangeStatus)
	g.GET("/trips/:trip_id/drop-candidates", trips.DropCandidates)

	g.POST("/trips/:trip_id/evidence", ev.Decide)
	g.GET("/trips/:trip_id/evidence", ev.Status)
	g.GET("/trips/:trip_id/evidence/history", ev.History)

	g.POST("/settlements", st.Create)
	g.GET("/settlements/:settlement_id", st.Get)
	g.PUT("/settlements/:settlement_id/trips", st.AssignTrips)
	g.POST("/settlements/:settlement_id/lines", st.AddLine)
	g.DELETE("/settlements/:settlement_id/lines/:line_id", st.RemoveLine)
	g.POST("/settlements/:settlement_id/ready", st.MarkReady)
	g.GET("/settlements/:settlement_id/total", st.Total)

	g.GET("/audit/:entity_type/:entity_id", au.List)
}
