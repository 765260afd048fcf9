package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/tasky/models"
)

func TestWelcome(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, &mockTaskService{})

	rec := doRequest(t, router, http.MethodGet, "/", nil, false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html" {
		t.Errorf("expected text/html, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Welcome to Tasky") {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestGetServerVersion(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, &mockTaskService{})

	rec := doRequest(t, router, http.MethodGet, "/api/version", nil, false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp models.VersionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode version response: %v", err)
	}
	if resp.Version != "test" {
		t.Errorf("expected version 'test', got %q", resp.Version)
	}
}
