package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const (
	PairIDKey        contextKey = "pairId"
	ParticipantIDKey contextKey = "participantId"
)

// RequireIdentity reads the pair and participant identity headers set by the
// API gateway after session validation. Requests without both are rejected
// before reaching any handler.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pairID := r.Header.Get("X-Pair-ID")
		participantID := r.Header.Get("X-Participant-ID")
		if pairID == "" || participantID == "" {
			http.Error(w, `{"error":"missing identity headers"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, PairIDKey, pairID)
		ctx = context.WithValue(ctx, ParticipantIDKey, participantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPairID extracts the pair ID from context.
func GetPairID(ctx context.Context) string {
	if v := ctx.Value(PairIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetParticipantID extracts the participant ID from context.
func GetParticipantID(ctx context.Context) string {
	if v := ctx.Value(ParticipantIDKey); v != nil {
		return v.(string)
	}
	return ""
}
