package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"linked/internal/service"
	"linked/internal/transport/rest/middleware"
)

// HintHandler handles hint endpoints.
type HintHandler struct {
	hintSvc *service.HintService
}

// NewHintHandler creates a new hint handler.
func NewHintHandler(hintSvc *service.HintService) *HintHandler {
	return &HintHandler{hintSvc: hintSvc}
}

// Use handles POST /v1/matches/{matchId}/hints.
func (h *HintHandler) Use(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	participantID := middleware.GetParticipantID(r.Context())

	result, err := h.hintSvc.UseHint(r.Context(), matchID, participantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
