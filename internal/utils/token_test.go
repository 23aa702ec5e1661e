package utils

import (
	"testing"

	"kabarindo/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := &models.User{
		ID:       7,
		Username: "budi",
		Email:    "budi@example.com",
		Role:     models.RoleAdmin,
	}

	token, err := GenerateToken(user, "rahasia-uji")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ParseToken(token, "rahasia-uji")
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Username != "budi" || claims.Email != "budi@example.com" {
		t.Errorf("identity claims mismatch: %+v", claims)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Role = %s, want ADMIN", claims.Role)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("token has no expiry")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 7, Username: "budi", Role: models.RoleUser}

	token, err := GenerateToken(user, "rahasia-uji")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token, "rahasia-lain"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestGenerateTokenRequiresUser(t *testing.T) {
	if _, err := GenerateToken(nil, "rahasia-uji"); err == nil {
		t.Error("expected error for nil user")
	}
	if _, err := GenerateToken(&models.User{}, "rahasia-uji"); err == nil {
		t.Error("expected error for user without id")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("admin123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("salah", hash) {
		t.Error("wrong password accepted")
	}
}
