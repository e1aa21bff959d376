package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"order not found", models.ErrOrderNotFound, http.StatusNotFound},
		{"menu item not found", models.ErrMenuItemNotFound, http.StatusNotFound},
		{"user not found", models.ErrUserNotFound, http.StatusNotFound},
		{"duplicate email", models.ErrDuplicateEmail, http.StatusConflict},
		{"finalized order", models.ErrOrderFinalized, http.StatusConflict},
		{"bad credentials", models.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owner", models.ErrNotOrderOwner, http.StatusForbidden},
		{"empty cart", models.ErrEmptyCart, http.StatusBadRequest},
		{"bad pickup time", models.ErrInvalidPickupTime, http.StatusBadRequest},
		{"bad access code", models.ErrInvalidAccessCode, http.StatusBadRequest},
		{"confirm required", models.ErrConfirmRequired, http.StatusBadRequest},
		{"unknown", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorStatus(tt.err); got != tt.want {
				t.Errorf("ErrorStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusBadRequest, "bad input", "req-123")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "bad input" {
		t.Errorf("error = %v, want %q", body["error"], "bad input")
	}
	if body["request_id"] != "req-123" {
		t.Errorf("request_id = %v, want %q", body["request_id"], "req-123")
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","bogus":1}`))
	if err := DecodeJSON(r, &dst); err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}
