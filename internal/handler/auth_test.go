package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/narathia/narathia-go/internal/repository"
	"github.com/narathia/narathia-go/internal/service"
)

func newTestAuthHandler() *AuthHandler {
	svc := service.NewAuthService(repository.NewUserRepository(nil), testSecret, time.Hour)
	return NewAuthHandler(svc)
}

func TestHandleRegister_InvalidBody(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleRegister_MissingFields(t *testing.T) {
	h := newTestAuthHandler()

	cases := []struct {
		name string
		body string
	}{
		{"no name", `{"email":"ana@example.com","password":"secret"}`},
		{"no email", `{"name":"Ana","password":"secret"}`},
		{"no password", `{"name":"Ana","email":"ana@example.com"}`},
		{"blank name", `{"name":"  ","email":"ana@example.com","password":"secret"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(c.body))
			rec := httptest.NewRecorder()
			h.HandleRegister(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleMe_NoContextUser(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	h.HandleMe(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
