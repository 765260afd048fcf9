package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/utils"
	"github.com/MKhiriev/tasky/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
		return
	}

	// CreateTaskRequest has no owner field, so a client-supplied owner is
	// dropped during decoding; ownership comes from the context alone.
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("task creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("task listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	h.taskByID(w, r, func(ctx context.Context, userID, taskID string) (models.Task, error) {
		return h.services.TaskService.GetTask(ctx, userID, taskID)
	}, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
		return
	}

	taskID := chi.URLParam(r, "id")

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, userID, taskID, update)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("task_id", taskID).Msg("task update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
		return
	}

	taskID := chi.URLParam(r, "id")

	if _, err := h.services.TaskService.DeleteTask(ctx, userID, taskID); err != nil {
		log.Err(err).Str("user_id", userID).Str("task_id", taskID).Msg("task soft-delete failed")
		writeError(w, err)
		return
	}

	utils.WriteMessage(w, "Task soft-deleted successfully", http.StatusOK)
}

func (h *Handler) restoreTask(w http.ResponseWriter, r *http.Request) {
	h.taskByID(w, r, func(ctx context.Context, userID, taskID string) (models.Task, error) {
		return h.services.TaskService.RestoreTask(ctx, userID, taskID)
	}, http.StatusOK)
}

func (h *Handler) completeTask(w http.ResponseWriter, r *http.Request) {
	h.taskByID(w, r, func(ctx context.Context, userID, taskID string) (models.Task, error) {
		return h.services.TaskService.CompleteTask(ctx, userID, taskID)
	}, http.StatusOK)
}

func (h *Handler) incompleteTask(w http.ResponseWriter, r *http.Request) {
	h.taskByID(w, r, func(ctx context.Context, userID, taskID string) (models.Task, error) {
		return h.services.TaskService.IncompleteTask(ctx, userID, taskID)
	}, http.StatusOK)
}

// taskByID factors the shared shape of single-task operations: resolve the
// caller, take the {id} route param, run op, and write the resulting task.
func (h *Handler) taskByID(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, taskID string) (models.Task, error), status int) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
		return
	}

	taskID := chi.URLParam(r, "id")

	task, err := op(ctx, userID, taskID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("task_id", taskID).Msg("task operation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, status)
}
