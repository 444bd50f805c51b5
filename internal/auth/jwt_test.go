package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTRoundtrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateJWT(secret, userID, "influencer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.UserType != "influencer" {
		t.Errorf("UserType = %q, want %q", claims.UserType, "influencer")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "company", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("ParseJWT() with wrong secret should fail")
	}
}

func TestJWTDefaultExpiration(t *testing.T) {
	// Zero or negative expiration falls back to 24h, so the token stays valid.
	token, err := GenerateJWT("secret", uuid.New(), "company", 0)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ParseJWT("secret", token); err != nil {
		t.Errorf("ParseJWT() error = %v", err)
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("secret", "not-a-token"); err == nil {
		t.Error("ParseJWT() of garbage should fail")
	}
}
