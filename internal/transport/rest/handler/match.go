package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"linked/internal/model"
	"linked/internal/service"
	"linked/internal/transport/rest/middleware"
)

// MatchHandler handles match lifecycle and turn endpoints.
type MatchHandler struct {
	matchSvc *service.MatchService
	turnSvc  *service.TurnService
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(matchSvc *service.MatchService, turnSvc *service.TurnService) *MatchHandler {
	return &MatchHandler{matchSvc: matchSvc, turnSvc: turnSvc}
}

// CreateMatchRequest is the request body for opening a match.
type CreateMatchRequest struct {
	LocalDate string `json:"localDate"`
}

// Create handles POST /v1/matches. Returns the pair's active match when one
// exists, so the endpoint is safe to call on every app open.
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	pairID := middleware.GetPairID(r.Context())

	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.LocalDate == "" {
		writeError(w, http.StatusBadRequest, "localDate is required")
		return
	}

	view, err := h.matchSvc.GetOrCreateMatch(r.Context(), pairID, req.LocalDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Get handles GET /v1/matches/{matchId}.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	view, err := h.matchSvc.GetMatchState(r.Context(), matchID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// SubmitTurnRequest is the request body for a turn submission.
type SubmitTurnRequest struct {
	Placements []model.Placement `json:"placements"`
}

// SubmitTurn handles POST /v1/matches/{matchId}/turns.
func (h *MatchHandler) SubmitTurn(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	participantID := middleware.GetParticipantID(r.Context())

	var req SubmitTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Placements) == 0 {
		writeError(w, http.StatusBadRequest, "placements are required")
		return
	}

	result, err := h.turnSvc.SubmitTurn(r.Context(), matchID, participantID, req.Placements)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListMoves handles GET /v1/matches/{matchId}/moves.
func (h *MatchHandler) ListMoves(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	moves, err := h.matchSvc.ListMoves(r.Context(), matchID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if moves == nil {
		moves = []*model.Move{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"moves": moves})
}
