package service

import (
	"context"

	"github.com/MKhiriev/tasky/models"
)

// AuthService covers the full identity lifecycle: registration, credential
// verification, token issuance/validation, and profile maintenance.
type AuthService interface {
	// Register creates a new account. It validates required fields, gates
	// the password strength, enforces email/userName uniqueness, and stores
	// only the bcrypt hash of the password.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the supplied credentials. The login value may be
	// either the email or the user name.
	Login(ctx context.Context, login, password string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetProfile re-fetches the current public profile from the store.
	// Token claims are deliberately not trusted for profile reads.
	GetProfile(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile applies the non-nil mutable profile fields.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)

	// ChangePassword verifies the old password before replacing the hash.
	// Previously issued tokens stay valid until their natural expiry.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

// TaskService covers all task operations. The userID argument of every
// method is the authenticated identity from the request context; ownership
// scoping happens in the repository queries underneath.
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, update models.TaskUpdate) (models.Task, error)

	// DeleteTask soft-deletes an owned, non-deleted task.
	DeleteTask(ctx context.Context, userID, taskID string) (models.Task, error)

	// RestoreTask brings a soft-deleted task back from the trash.
	RestoreTask(ctx context.Context, userID, taskID string) (models.Task, error)

	// CompleteTask and IncompleteTask toggle the completion flag.
	// Both are idempotent.
	CompleteTask(ctx context.Context, userID, taskID string) (models.Task, error)
	IncompleteTask(ctx context.Context, userID, taskID string) (models.Task, error)
}
