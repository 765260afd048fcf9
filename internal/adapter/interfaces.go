// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Tasky server.
//
// The primary abstraction is [ServerAdapter], which decouples client-side
// callers from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/tasky/models"
)

// ServerAdapter defines transport-agnostic communication with the Tasky
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. Registration does not
	// establish a session; call Login afterwards.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates against the server. On success the returned token
	// is stored via SetToken and the server-side user record is returned.
	Login(ctx context.Context, login, password string) (models.User, error)

	// Profile fetches the authenticated user's current profile.
	Profile(ctx context.Context) (models.User, error)

	// CreateTask creates a new task owned by the authenticated user.
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)

	// ListTasks fetches every task owned by the authenticated user, trashed
	// and completed ones included, newest first.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// GetTask fetches a single non-trashed task by ID.
	GetTask(ctx context.Context, taskID string) (models.Task, error)

	// UpdateTask applies a partial update to a non-trashed task.
	UpdateTask(ctx context.Context, taskID string, update models.TaskUpdate) (models.Task, error)

	// DeleteTask moves a task to the trash.
	DeleteTask(ctx context.Context, taskID string) error

	// RestoreTask brings a trashed task back.
	RestoreTask(ctx context.Context, taskID string) (models.Task, error)

	// CompleteTask marks a task as done.
	CompleteTask(ctx context.Context, taskID string) (models.Task, error)

	// IncompleteTask marks a task as not done.
	IncompleteTask(ctx context.Context, taskID string) (models.Task, error)
}
