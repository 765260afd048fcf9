package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/store"
	"github.com/MKhiriev/tasky/models"
)

// taskService is the concrete implementation of TaskService.
//
// It contains no authorization logic of its own: ownership enforcement lives
// in the repository queries, which always filter by the userID this service
// passes through from the authenticated request context.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService wired to the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// CreateTask creates a task owned by userID. The owner always comes from the
// authenticated context; any owner value in the request body is ignored
// upstream by never being decoded.
//
// Returns ErrInvalidDataProvided when the title is empty.
func (s *taskService) CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" {
		log.Error().Str("user_id", userID).Msg("task title is required")
		return models.Task{}, fmt.Errorf("%w: title is required", ErrInvalidDataProvided)
	}

	task := models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}

	createdTask, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// ListTasks returns the full owned set, newest first. Completed and trashed
// tasks are included; list views filter client-side.
func (s *taskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	tasks, err := s.taskRepository.GetTasks(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("task listing failed")
		return nil, fmt.Errorf("task listing failed: %w", err)
	}

	return tasks, nil
}

// GetTask returns one owned, non-deleted task or store.ErrTaskNotFound.
func (s *taskService) GetTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID, userID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	return task, nil
}

// UpdateTask applies the non-nil fields of update under the ownership and
// not-deleted filter.
//
// Returns ErrInvalidDataProvided when the update carries no fields, and
// rejects an explicitly empty title.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		log.Error().Str("user_id", userID).Str("task_id", taskID).Msg("empty task update provided")
		return models.Task{}, ErrInvalidDataProvided
	}
	if update.Title != nil && *update.Title == "" {
		return models.Task{}, fmt.Errorf("%w: title is required", ErrInvalidDataProvided)
	}

	updatedTask, err := s.taskRepository.UpdateTask(ctx, taskID, userID, update)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("task_id", taskID).Msg("task update failed")
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}

	return updatedTask, nil
}

// DeleteTask soft-deletes an owned, non-deleted task. The row stays in the
// store and remains restorable.
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	return s.setDeleted(ctx, userID, taskID, true)
}

// RestoreTask flips a trashed task back to the live state, leaving its title
// and description untouched.
func (s *taskService) RestoreTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	return s.setDeleted(ctx, userID, taskID, false)
}

// CompleteTask marks an owned, non-deleted task as done. Idempotent.
func (s *taskService) CompleteTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	return s.setCompleted(ctx, userID, taskID, true)
}

// IncompleteTask clears the completion flag. Idempotent.
func (s *taskService) IncompleteTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	return s.setCompleted(ctx, userID, taskID, false)
}

func (s *taskService) setDeleted(ctx context.Context, userID, taskID string, deleted bool) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := s.taskRepository.SetDeleted(ctx, taskID, userID, deleted)
	if err != nil {
		log.Err(err).
			Str("user_id", userID).
			Str("task_id", taskID).
			Bool("deleted", deleted).
			Msg("task delete flag change failed")
		return models.Task{}, fmt.Errorf("task delete flag change failed: %w", err)
	}

	return task, nil
}

func (s *taskService) setCompleted(ctx context.Context, userID, taskID string, completed bool) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := s.taskRepository.SetCompleted(ctx, taskID, userID, completed)
	if err != nil {
		log.Err(err).
			Str("user_id", userID).
			Str("task_id", taskID).
			Bool("completed", completed).
			Msg("task completion flag change failed")
		return models.Task{}, fmt.Errorf("task completion flag change failed: %w", err)
	}

	return task, nil
}
