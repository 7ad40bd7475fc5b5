package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"linked/internal/service"
	"linked/internal/transport/rest/handler"
	"linked/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	MatchService  *service.MatchService
	TurnService   *service.TurnService
	HintService   *service.HintService
	PointsService *service.PointsService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	matchHandler := handler.NewMatchHandler(c.MatchService, c.TurnService)
	hintHandler := handler.NewHintHandler(c.HintService)
	pointsHandler := handler.NewPointsHandler(c.PointsService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes; every route requires the gateway identity headers.
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Use(middleware.RequireIdentity)

	v1.HandleFunc("/matches", matchHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/matches/{matchId}", matchHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/matches/{matchId}/turns", matchHandler.SubmitTurn).Methods("POST", "OPTIONS")
	v1.HandleFunc("/matches/{matchId}/hints", hintHandler.Use).Methods("POST", "OPTIONS")
	v1.HandleFunc("/matches/{matchId}/moves", matchHandler.ListMoves).Methods("GET", "OPTIONS")
	v1.HandleFunc("/points", pointsHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, X-Pair-ID, X-Participant-ID"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
