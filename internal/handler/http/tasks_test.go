package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/tasky/internal/store"
	"github.com/MKhiriev/tasky/models"
)

func TestCreateTask_Created(t *testing.T) {
	tasks := &mockTaskService{
		createTask: func(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error) {
			if userID != "user-1" {
				t.Errorf("expected owner user-1, got %q", userID)
			}
			return models.Task{ID: "task-1", UserID: userID, Title: req.Title, Description: req.Description}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodPost, "/api/tasks", models.CreateTaskRequest{
		Title:       "buy milk",
		Description: "2 liters",
	}, true)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var task models.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode task: %v", err)
	}
	if task.ID != "task-1" || task.Title != "buy milk" {
		t.Errorf("unexpected task in response: %+v", task)
	}
}

func TestCreateTask_RequiresAuth(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, &mockTaskService{})

	rec := doRequest(t, router, http.MethodPost, "/api/tasks", models.CreateTaskRequest{Title: "buy milk"}, false)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestListTasks_OK(t *testing.T) {
	tasks := &mockTaskService{
		listTasks: func(ctx context.Context, userID string) ([]models.Task, error) {
			return []models.Task{
				{ID: "task-2", UserID: userID, Title: "newer"},
				{ID: "task-1", UserID: userID, Title: "older", IsDeleted: true},
			}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodGet, "/api/tasks", nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listed []models.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode task list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(listed))
	}
	if !listed[1].IsDeleted {
		t.Error("expected trashed task to be present in the listing")
	}
}

func TestGetTask_OK(t *testing.T) {
	tasks := &mockTaskService{
		getTask: func(ctx context.Context, userID, taskID string) (models.Task, error) {
			if taskID != "task-1" {
				t.Errorf("expected task-1, got %q", taskID)
			}
			return models.Task{ID: taskID, UserID: userID, Title: "buy milk"}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodGet, "/api/tasks/task-1", nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetTask_ForeignTaskIsNotFound(t *testing.T) {
	tasks := &mockTaskService{
		getTask: func(ctx context.Context, userID, taskID string) (models.Task, error) {
			return models.Task{}, store.ErrTaskNotFound
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodGet, "/api/tasks/foreign-task", nil, true)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "task not found" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestUpdateTask_OK(t *testing.T) {
	tasks := &mockTaskService{
		updateTask: func(ctx context.Context, userID, taskID string, update models.TaskUpdate) (models.Task, error) {
			return models.Task{ID: taskID, UserID: userID, Title: *update.Title}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	newTitle := "buy oat milk"
	rec := doRequest(t, router, http.MethodPatch, "/api/tasks/task-1", models.TaskUpdate{Title: &newTitle}, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var task models.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode task: %v", err)
	}
	if task.Title != newTitle {
		t.Errorf("expected updated title, got %q", task.Title)
	}
}

func TestDeleteTask_OK(t *testing.T) {
	tasks := &mockTaskService{
		deleteTask: func(ctx context.Context, userID, taskID string) (models.Task, error) {
			return models.Task{ID: taskID, UserID: userID, IsDeleted: true}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodDelete, "/api/tasks/task-1", nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Task soft-deleted successfully" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestRestoreTask_OK(t *testing.T) {
	tasks := &mockTaskService{
		restoreTask: func(ctx context.Context, userID, taskID string) (models.Task, error) {
			return models.Task{ID: taskID, UserID: userID, IsDeleted: false}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodPatch, "/api/tasks/restore/task-1", nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRestoreTask_NotTrashed(t *testing.T) {
	tasks := &mockTaskService{
		restoreTask: func(ctx context.Context, userID, taskID string) (models.Task, error) {
			return models.Task{}, store.ErrTaskNotFound
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodPatch, "/api/tasks/restore/task-1", nil, true)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCompleteTask_OK(t *testing.T) {
	tasks := &mockTaskService{
		completeTask: func(ctx context.Context, userID, taskID string) (models.Task, error) {
			return models.Task{ID: taskID, UserID: userID, IsCompleted: true}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodPatch, "/api/tasks/complete/task-1", nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var task models.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode task: %v", err)
	}
	if !task.IsCompleted {
		t.Error("expected completed task in response")
	}
}

func TestIncompleteTask_OK(t *testing.T) {
	tasks := &mockTaskService{
		incompleteTask: func(ctx context.Context, userID, taskID string) (models.Task, error) {
			return models.Task{ID: taskID, UserID: userID, IsCompleted: false}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, tasks)

	rec := doRequest(t, router, http.MethodPatch, "/api/tasks/incomplete/task-1", nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
