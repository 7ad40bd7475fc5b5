package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"linked/internal/model"
	"linked/internal/service"
)

type emptyMatchRepo struct{}

func (emptyMatchRepo) Create(context.Context, *model.Match) error { return nil }
func (emptyMatchRepo) GetByID(context.Context, string) (*model.Match, error) {
	return nil, nil
}
func (emptyMatchRepo) GetActiveByPair(context.Context, string) (*model.Match, error) {
	return nil, nil
}
func (emptyMatchRepo) Update(context.Context, *model.Match) error { return nil }
func (emptyMatchRepo) PlayedPuzzleIDs(context.Context, string) ([]string, error) {
	return nil, nil
}

func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	matchSvc := service.NewMatchService(nil, nil, emptyMatchRepo{}, nil, nil, nil, nil, 2, logger)
	return NewRouter(&Container{MatchService: matchSvc})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestIdentityRequired(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/matches/m1", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without identity headers", rec.Code)
	}
}

func TestMatchNotFoundMapsTo404(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/matches/ghost", nil)
	req.Header.Set("X-Pair-ID", "pair1")
	req.Header.Set("X-Participant-ID", "alice")

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "match not found") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
