package store

import (
	"context"
	"time"

	"github.com/MKhiriev/tasky/models"
)

// UserRepository is the data-access contract for user accounts.
//
// Implementations must never return the password hash to callers outside the
// store/service boundary in any serialized form; the hash travels only inside
// [models.User] values between the repository and the auth service.
type UserRepository interface {
	// CreateUser persists a new user record. Returns
	// [ErrUserAlreadyExists] when the email or user name is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmailOrUserName looks an account up by either unique login
	// identifier. Returns [ErrUserNotFound] when no record matches.
	FindUserByEmailOrUserName(ctx context.Context, login string) (models.User, error)

	// FindUserByID looks an account up by its primary identifier.
	// Returns [ErrUserNotFound] when no record matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile applies the non-nil fields of update to the record and
	// refreshes last_updated. The password hash is never touched. Returns
	// [ErrUserNotFound] or [ErrUserAlreadyExists] on uniqueness conflicts.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)

	// UpdatePassword replaces the stored password hash and refreshes
	// last_updated. Verification of the old secret happens in the service.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
}

// TaskRepository is the data-access contract for tasks.
//
// Every query is scoped by the owning user's ID; a task belonging to another
// user is indistinguishable from a missing one ([ErrTaskNotFound]).
type TaskRepository interface {
	// CreateTask persists a new task owned by task.UserID.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// GetTasks returns every task owned by userID, including completed and
	// soft-deleted ones, newest first.
	GetTasks(ctx context.Context, userID string) ([]models.Task, error)

	// GetTask returns the owned, non-deleted task with the given ID, or
	// [ErrTaskNotFound].
	GetTask(ctx context.Context, taskID, userID string) (models.Task, error)

	// UpdateTask applies the non-nil fields of update to an owned,
	// non-deleted task and refreshes last_updated.
	UpdateTask(ctx context.Context, taskID, userID string, update models.TaskUpdate) (models.Task, error)

	// SetDeleted flips the soft-delete flag. The row must currently carry
	// the opposite flag value; otherwise [ErrTaskNotFound] is returned, so a
	// delete targets live tasks and a restore targets trashed ones.
	SetDeleted(ctx context.Context, taskID, userID string, deleted bool) (models.Task, error)

	// SetCompleted sets the completion flag on an owned, non-deleted task.
	// Idempotent: setting an already-set flag succeeds.
	SetCompleted(ctx context.Context, taskID, userID string, completed bool) (models.Task, error)

	// PurgeDeletedBefore permanently removes soft-deleted tasks whose last
	// update is older than cutoff. Returns the number of rows removed.
	// Reserved for the background trash purger; not reachable from the API.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
