package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/utils"
	"github.com/MKhiriev/tasky/models"
)

// taskRepository is the SQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations against the "tasks" table using the
// shared [*DB] connection.
//
// Every query carries the owning user's ID in its WHERE clause; rows owned by
// other users are never visible, so a foreign task surfaces as
// [ErrTaskNotFound] rather than a permission error.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateTask persists a new task and returns the fully populated
// [models.Task] with server-assigned fields (ID, DateCreated, LastUpdated).
// The completion and deletion flags always start as false.
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	task.ID = t.ids.Generate()
	task.IsCompleted = false
	task.IsDeleted = false
	task.DateCreated = now
	task.LastUpdated = now

	row := t.db.QueryRowContext(ctx, createTask,
		task.ID, task.UserID, task.Title, task.Description,
		task.IsCompleted, task.IsDeleted, task.DateCreated, task.LastUpdated)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Str("user_id", task.UserID).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanTask(row, &task); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// GetTasks retrieves every task owned by userID, newest first. Completed and
// soft-deleted tasks are included; list views filter client-side.
//
// Returns an empty slice when the user owns no tasks.
func (t *taskRepository) GetTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := t.db.QueryContext(ctx, getTasksByUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.GetTasks").
			Str("user_id", userID).
			Msg("failed to execute query for user tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 20)

	for rows.Next() {
		var task models.Task

		scanErr := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.IsCompleted,
			&task.IsDeleted,
			&task.DateCreated,
			&task.LastUpdated,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.GetTasks").
				Str("user_id", userID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*taskRepository.GetTasks").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// GetTask retrieves a single owned, non-deleted task.
//
// Returns [ErrTaskNotFound] when no row matches the ownership filter.
func (t *taskRepository) GetTask(ctx context.Context, taskID, userID string) (models.Task, error) {
	return t.queryTask(ctx, "*taskRepository.GetTask", getTaskByID, taskID, userID)
}

// UpdateTask applies the non-nil fields of update to an owned, non-deleted
// task, refreshing last_updated, and returns the mutated row.
func (t *taskRepository) UpdateTask(ctx context.Context, taskID, userID string, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(taskID, userID, update, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Str("task_id", taskID).
			Str("user_id", userID).
			Msg("failed to build task update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.queryTask(ctx, "*taskRepository.UpdateTask", query, args...)
}

// SetDeleted flips the soft-delete marker. The WHERE clause requires the row
// to currently carry the opposite flag, so deleting targets live tasks and
// restoring targets trashed ones; anything else is [ErrTaskNotFound].
func (t *taskRepository) SetDeleted(ctx context.Context, taskID, userID string, deleted bool) (models.Task, error) {
	return t.queryTask(ctx, "*taskRepository.SetDeleted", setTaskDeleted,
		deleted, time.Now(), taskID, userID, !deleted)
}

// SetCompleted sets the completion flag on an owned, non-deleted task.
// The flag value is not part of the filter, so repeating the operation is an
// idempotent success.
func (t *taskRepository) SetCompleted(ctx context.Context, taskID, userID string, completed bool) (models.Task, error) {
	return t.queryTask(ctx, "*taskRepository.SetCompleted", setTaskCompleted,
		completed, time.Now(), taskID, userID)
}

// PurgeDeletedBefore permanently removes soft-deleted tasks last touched
// before cutoff. Only the trash purge worker calls this; the REST API exposes
// no hard delete.
func (t *taskRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := t.db.ExecContext(ctx, purgeDeletedTasks, cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.PurgeDeletedBefore").
			Time("cutoff", cutoff).
			Msg("failed to purge deleted tasks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}

// queryTask runs a single-row task query and normalises the not-found case.
func (t *taskRepository) queryTask(ctx context.Context, funcName, query string, args ...any) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	row := t.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanTask(row, &task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// scanTask reads a full tasks row into dst.
func scanTask(row *sql.Row, dst *models.Task) error {
	return row.Scan(
		&dst.ID,
		&dst.UserID,
		&dst.Title,
		&dst.Description,
		&dst.IsCompleted,
		&dst.IsDeleted,
		&dst.DateCreated,
		&dst.LastUpdated,
	)
}
