package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/tasky/internal/service"
	"github.com/MKhiriev/tasky/internal/store"
	"github.com/MKhiriev/tasky/models"
)

func TestRegister_Created(t *testing.T) {
	auth := &mockAuthService{
		register: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{ID: "user-1", Email: req.Email}, nil
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{
		FirstName: "John",
		LastName:  "Doe",
		UserName:  "johndoe",
		Email:     "john@example.com",
		Password:  "vZ9#qLm2@tR7x",
	}, false)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "user registered successfully" {
		t.Errorf("unexpected message: %q", msg)
	}
	// registration must not start a session
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookie on registration")
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", "{not json", false)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	auth := &mockAuthService{
		register: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{Email: "taken@example.com"}, false)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "email or username already in use" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestRegister_MissingField(t *testing.T) {
	auth := &mockAuthService{
		register: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("%w: firstName is required", service.ErrInvalidDataProvided)
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{}, false)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "firstName is required" {
		t.Errorf("expected field-naming message, got %q", msg)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	auth := &mockAuthService{
		register: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrWeakPassword
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{Password: "123"}, false)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		login: func(ctx context.Context, login, password string) (models.User, error) {
			if login != "john@example.com" {
				t.Errorf("expected login to be the email, got %q", login)
			}
			return models.User{ID: "user-1", UserName: "johndoe", Email: login}, nil
		},
		createToken: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt", UserID: user.ID}, nil
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email:    "john@example.com",
		Password: "vZ9#qLm2@tR7x",
	}, false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Token != "signed-jwt" {
		t.Errorf("expected token in body, got %q", resp.Token)
	}
	if resp.User.ID != "user-1" {
		t.Errorf("expected user in body, got %+v", resp.User)
	}

	cookie := findSessionCookie(rec)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if cookie.Value != "signed-jwt" {
		t.Errorf("expected cookie to carry the token, got %q", cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteNoneMode {
		t.Error("expected HttpOnly, Secure, SameSite=None cookie attributes")
	}
}

func TestLogin_ByUserName(t *testing.T) {
	auth := &mockAuthService{
		login: func(ctx context.Context, login, password string) (models.User, error) {
			if login != "johndoe" {
				t.Errorf("expected login to fall back to userName, got %q", login)
			}
			return models.User{ID: "user-1", UserName: login}, nil
		},
		createToken: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt", UserID: user.ID}, nil
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{
		UserName: "johndoe",
		Password: "vZ9#qLm2@tR7x",
	}, false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		login: func(ctx context.Context, login, password string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong",
	}, false)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "invalid login or password" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	auth := &mockAuthService{
		login: func(ctx context.Context, login, password string) (models.User, error) {
			return models.User{}, fmt.Errorf("user search by login failed: %w", store.ErrUserNotFound)
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	}, false)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/logout", nil, false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := findSessionCookie(rec)
	if cookie == nil {
		t.Fatal("expected expiring session cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Errorf("expected cleared cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestChangePassword_Success(t *testing.T) {
	auth := &mockAuthService{
		changePassword: func(ctx context.Context, userID, oldPassword, newPassword string) error {
			if userID != "user-1" {
				t.Errorf("expected user-1, got %q", userID)
			}
			return nil
		},
	}
	router := newTestRouter(auth, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPatch, "/api/auth/password", models.ChangePasswordRequest{
		OldPassword: "old-secret-42!",
		NewPassword: "new-secret-43!",
	}, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestChangePassword_RequiresAuth(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPatch, "/api/auth/password", models.ChangePasswordRequest{}, false)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func findSessionCookie(rec interface{ Result() *http.Response }) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	return nil
}
