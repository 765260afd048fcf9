package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/tasky/internal/config"
	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/service"
	"github.com/MKhiriev/tasky/models"
	"github.com/go-chi/chi/v5"
)

var errMockNotConfigured = errors.New("mock not configured")

// mockAuthService is a hand-written service.AuthService stub whose behaviour
// is supplied per test through function fields.
type mockAuthService struct {
	register       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	login          func(ctx context.Context, login, password string) (models.User, error)
	createToken    func(ctx context.Context, user models.User) (models.Token, error)
	parseToken     func(ctx context.Context, tokenString string) (models.Token, error)
	getProfile     func(ctx context.Context, userID string) (models.User, error)
	updateProfile  func(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
	changePassword func(ctx context.Context, userID, oldPassword, newPassword string) error
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.register == nil {
		return models.User{}, errMockNotConfigured
	}
	return m.register(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (models.User, error) {
	if m.login == nil {
		return models.User{}, errMockNotConfigured
	}
	return m.login(ctx, login, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createToken == nil {
		return models.Token{}, errMockNotConfigured
	}
	return m.createToken(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseToken == nil {
		// default guard behaviour: one well-known token belongs to user-1
		if tokenString == "valid-token" {
			return models.Token{SignedString: tokenString, UserID: "user-1"}, nil
		}
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseToken(ctx, tokenString)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	if m.getProfile == nil {
		return models.User{}, errMockNotConfigured
	}
	return m.getProfile(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	if m.updateProfile == nil {
		return models.User{}, errMockNotConfigured
	}
	return m.updateProfile(ctx, userID, update)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if m.changePassword == nil {
		return errMockNotConfigured
	}
	return m.changePassword(ctx, userID, oldPassword, newPassword)
}

// mockTaskService is a hand-written service.TaskService stub.
type mockTaskService struct {
	createTask     func(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error)
	listTasks      func(ctx context.Context, userID string) ([]models.Task, error)
	getTask        func(ctx context.Context, userID, taskID string) (models.Task, error)
	updateTask     func(ctx context.Context, userID, taskID string, update models.TaskUpdate) (models.Task, error)
	deleteTask     func(ctx context.Context, userID, taskID string) (models.Task, error)
	restoreTask    func(ctx context.Context, userID, taskID string) (models.Task, error)
	completeTask   func(ctx context.Context, userID, taskID string) (models.Task, error)
	incompleteTask func(ctx context.Context, userID, taskID string) (models.Task, error)
}

func (m *mockTaskService) CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error) {
	if m.createTask == nil {
		return models.Task{}, errMockNotConfigured
	}
	return m.createTask(ctx, userID, req)
}

func (m *mockTaskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	if m.listTasks == nil {
		return nil, errMockNotConfigured
	}
	return m.listTasks(ctx, userID)
}

func (m *mockTaskService) GetTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	if m.getTask == nil {
		return models.Task{}, errMockNotConfigured
	}
	return m.getTask(ctx, userID, taskID)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, userID, taskID string, update models.TaskUpdate) (models.Task, error) {
	if m.updateTask == nil {
		return models.Task{}, errMockNotConfigured
	}
	return m.updateTask(ctx, userID, taskID, update)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	if m.deleteTask == nil {
		return models.Task{}, errMockNotConfigured
	}
	return m.deleteTask(ctx, userID, taskID)
}

func (m *mockTaskService) RestoreTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	if m.restoreTask == nil {
		return models.Task{}, errMockNotConfigured
	}
	return m.restoreTask(ctx, userID, taskID)
}

func (m *mockTaskService) CompleteTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	if m.completeTask == nil {
		return models.Task{}, errMockNotConfigured
	}
	return m.completeTask(ctx, userID, taskID)
}

func (m *mockTaskService) IncompleteTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	if m.incompleteTask == nil {
		return models.Task{}, errMockNotConfigured
	}
	return m.incompleteTask(ctx, userID, taskID)
}

// newTestRouter wires the mocks into a full router so tests go through the
// real middleware chain.
func newTestRouter(auth *mockAuthService, tasks *mockTaskService) *chi.Mux {
	h := NewHandler(&service.Services{
		AuthService: auth,
		TaskService: tasks,
	}, config.App{Version: "test"}, logger.Nop())

	return h.Init()
}

func doRequest(t *testing.T, router *chi.Mux, method, target string, body any, authorize bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorize {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid-token"})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode message response: %v (body: %s)", err, rec.Body.String())
	}
	return resp.Message
}
