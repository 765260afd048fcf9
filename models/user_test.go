package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := User{
		ID:           "user-1",
		UserName:     "johndoe",
		Email:        "john@example.com",
		PasswordHash: "bcrypt-hash-value",
	}

	out, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(string(out), "bcrypt-hash-value") {
		t.Error("password hash leaked into JSON output")
	}
	if strings.Contains(string(out), "passwordHash") {
		t.Error("password hash field name leaked into JSON output")
	}
}

func TestProfileUpdate_IsEmpty(t *testing.T) {
	if !(ProfileUpdate{}).IsEmpty() {
		t.Error("expected zero update to be empty")
	}

	name := "Johnny"
	if (ProfileUpdate{FirstName: &name}).IsEmpty() {
		t.Error("expected update with a field to be non-empty")
	}
}

func TestTaskUpdate_IsEmpty(t *testing.T) {
	if !(TaskUpdate{}).IsEmpty() {
		t.Error("expected zero update to be empty")
	}

	done := true
	if (TaskUpdate{IsCompleted: &done}).IsEmpty() {
		t.Error("expected update with a field to be non-empty")
	}
}

func TestLoginRequest_Login(t *testing.T) {
	tests := []struct {
		name string
		req  LoginRequest
		want string
	}{
		{"email preferred", LoginRequest{Email: "john@example.com", UserName: "johndoe"}, "john@example.com"},
		{"username fallback", LoginRequest{UserName: "johndoe"}, "johndoe"},
		{"both empty", LoginRequest{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Login(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
