package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/tasky/models"
)

const (
	testIssuer  = "tasky-test"
	testSignKey = "test-sign-key"
)

func testUser() models.User {
	return models.User{
		ID:        "user-1",
		FirstName: "John",
		LastName:  "Doe",
		UserName:  "johndoe",
		Email:     "john@example.com",
	}
}

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected a signed token string")
	}
	if token.UserID != "user-1" {
		t.Errorf("expected UserID=user-1, got %s", token.UserID)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != "user-1" {
		t.Errorf("expected parsed UserID=user-1, got %s", parsed.UserID)
	}

	claims, ok := parsed.Claims.(*models.TokenClaims)
	if !ok {
		t.Fatal("expected *models.TokenClaims")
	}
	if claims.UserName != "johndoe" || claims.Email != "john@example.com" {
		t.Errorf("expected profile snapshot in claims, got %+v", claims)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", testUser(), time.Hour, testSignKey},
		{"empty user id", testIssuer, models.User{}, time.Hour, testSignKey},
		{"zero duration", testIssuer, testUser(), 0, testSignKey},
		{"empty sign key", testIssuer, testUser(), time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.signKey); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(token.SignedString, "another-key", testIssuer); err == nil {
		t.Error("expected signature verification to fail")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", testUser(), time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer); err == nil {
		t.Error("expected issuer check to fail")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser(), -time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(token.SignedString, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA"

	if _, err := ValidateAndParseJWTToken(tampered, testSignKey, testIssuer); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}
