package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

func TestRequireUser(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	userToken, err := tm.Generate(&models.User{ID: 5, Email: "a@b.com", Name: "A", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + userToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := tm.RequireUser(func(w http.ResponseWriter, r *http.Request) {
				identity, ok := web.IdentityFromContext(r.Context())
				if !ok {
					t.Error("expected identity in context")
				}
				if identity.UserID != 5 {
					t.Errorf("user id = %d, want 5", identity.UserID)
				}
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, r)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	userToken, _ := tm.Generate(&models.User{ID: 5, Role: models.RoleUser})
	adminToken, _ := tm.Generate(&models.User{ID: 1, Role: models.RoleAdmin})

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"regular user forbidden", userToken, http.StatusForbidden},
		{"admin allowed", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := tm.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodDelete, "/orders", nil)
			r.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()
			handler(rec, r)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
