package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newGameIDRequest(t *testing.T, id string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("game_id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGameIDParam_Valid(t *testing.T) {
	req := newGameIDRequest(t, "b3c9f6fa-8e2c-4f4b-9a70-1f1f0c9de111")

	id, ok := gameIDParam(req)
	if !ok {
		t.Fatal("expected valid uuid to be accepted")
	}
	if id != "b3c9f6fa-8e2c-4f4b-9a70-1f1f0c9de111" {
		t.Errorf("unexpected id: %s", id)
	}
}

func TestGameIDParam_Invalid(t *testing.T) {
	for _, id := range []string{"", "123", "not-a-uuid", "b3c9f6fa-8e2c-4f4b-9a70"} {
		req := newGameIDRequest(t, id)
		if _, ok := gameIDParam(req); ok {
			t.Errorf("expected %q to be rejected", id)
		}
	}
}
