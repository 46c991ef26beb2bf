package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLivenessEndpoint(t *testing.T) {
	s := New(":0", zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET / = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "Bot is running!" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestNoOtherRoutes(t *testing.T) {
	s := New(":0", zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /health = %d, want 404", rec.Code)
	}
}
