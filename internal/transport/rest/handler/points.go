package handler

import (
	"net/http"

	"linked/internal/service"
	"linked/internal/transport/rest/middleware"
)

// PointsHandler handles the pair ledger endpoint.
type PointsHandler struct {
	pointsSvc *service.PointsService
}

// NewPointsHandler creates a new points handler.
func NewPointsHandler(pointsSvc *service.PointsService) *PointsHandler {
	return &PointsHandler{pointsSvc: pointsSvc}
}

// Get handles GET /v1/points.
func (h *PointsHandler) Get(w http.ResponseWriter, r *http.Request) {
	pairID := middleware.GetPairID(r.Context())

	total, err := h.pointsSvc.PairTotal(r.Context(), pairID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pairId": pairID,
		"total":  total,
	})
}
