package auth

import (
	"testing"
	"time"

	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	user := &models.User{ID: 7, Email: "user@example.com", Name: "Giovanni Rossi", Role: models.RoleUser}

	token, err := tm.Generate(user)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	claims, err := tm.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "user@example.com" || claims.Role != "user" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)
	token, err := tm.Generate(&models.User{ID: 1, Email: "a@b.co", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := tm.Validate(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour)
	other := NewTokenManager("secret-two", time.Hour)

	token, err := tm.Generate(&models.User{ID: 1, Email: "a@b.co", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := other.Validate(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	if _, err := tm.Validate("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}
