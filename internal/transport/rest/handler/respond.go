package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"linked/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service-layer errors onto HTTP statuses. Content
// defects are deliberately opaque to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	var cooldown model.CooldownActiveError
	if errors.As(err, &cooldown) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":            "cooldown active",
			"remainingSeconds": int(cooldown.Remaining / time.Second),
		})
		return
	}

	var content model.ContentError
	if errors.As(err, &content) {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch {
	case errors.Is(err, model.ErrMatchNotFound), errors.Is(err, model.ErrPairNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrNotPairMember):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrMatchAlreadyComplete),
		errors.Is(err, model.ErrNoHintsRemaining),
		errors.Is(err, model.ErrMatchBusy):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
