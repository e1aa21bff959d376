package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

func TestIdentityContextRoundTrip(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := IdentityFromContext(r.Context()); ok {
		t.Fatal("expected no identity on a fresh context")
	}

	want := Identity{UserID: 7, Email: "guest@example.com", Name: "Guest", Role: models.RoleUser}
	ctx := WithIdentity(r.Context(), want)

	got, ok := IdentityFromContext(ctx)
	if !ok {
		t.Fatal("expected identity to be present")
	}
	if got != want {
		t.Errorf("identity = %+v, want %+v", got, want)
	}
}

func TestWithLoggingSetsRequestID(t *testing.T) {
	log := logger.New("test")

	var seen string
	handler := WithLogging(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))

	if seen == "" {
		t.Error("expected a request id in the handler context")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRecoveryConvertsPanic(t *testing.T) {
	log := logger.New("test")

	handler := Recovery(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
