package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/tasky/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig carries the settings needed to reach a Tasky server over
// HTTP.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.BaseURL and configures the
// underlying client with the resolved base URL and request timeout.
func NewHTTPServerAdapter(cfg HTTPClientConfig) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, login, password string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: login, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(lr.Token)
	return lr.User, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	return h.taskRequest(ctx, "POST", "/api/tasks", req)
}

func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	resp, err := h.authedRequest(ctx).Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("decode task list response: %w", err)
	}
	return tasks, nil
}

func (h *httpServerAdapter) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	return h.taskRequest(ctx, "GET", "/api/tasks/"+taskID, nil)
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error) {
	return h.taskRequest(ctx, "PATCH", "/api/tasks/"+taskID, update)
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/tasks/" + taskID)
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RestoreTask(ctx context.Context, taskID string) (models.Task, error) {
	return h.taskRequest(ctx, "PATCH", "/api/tasks/restore/"+taskID, nil)
}

func (h *httpServerAdapter) CompleteTask(ctx context.Context, taskID string) (models.Task, error) {
	return h.taskRequest(ctx, "PATCH", "/api/tasks/complete/"+taskID, nil)
}

func (h *httpServerAdapter) IncompleteTask(ctx context.Context, taskID string) (models.Task, error) {
	return h.taskRequest(ctx, "PATCH", "/api/tasks/incomplete/"+taskID, nil)
}

// taskRequest factors the shared shape of single-task calls: send an
// authenticated request and decode the task from the response body.
func (h *httpServerAdapter) taskRequest(ctx context.Context, method, path string, body any) (models.Task, error) {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return models.Task{}, fmt.Errorf("task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode task response: %w", err)
	}
	return task, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
