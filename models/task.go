package models

import "time"

// Task represents a single to-do item owned by exactly one user.
//
// A task is never removed through the public API: deletion flips the
// IsDeleted flag, keeping the row restorable from the trash view.
type Task struct {
	// ID is the unique identifier of the task, generated at creation time
	// and immutable afterwards.
	ID string `json:"id"`

	// UserID references the owning user. It is forced from the
	// authenticated request context at creation and never changes.
	UserID string `json:"userId"`

	// Title is the short task summary.
	Title string `json:"title"`

	// Description is the free-form task body.
	Description string `json:"description"`

	// IsCompleted marks the task as done. Defaults to false.
	IsCompleted bool `json:"isCompleted"`

	// IsDeleted is the soft-delete marker. A deleted task is excluded from
	// reads and edits but remains restorable. Defaults to false.
	IsDeleted bool `json:"isDeleted"`

	// DateCreated is the timestamp when the task was created.
	DateCreated time.Time `json:"dateCreated"`

	// LastUpdated is refreshed on every mutation, including flag toggles.
	LastUpdated time.Time `json:"lastUpdated"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate carries the mutable fields of a [Task].
// Nil fields are left untouched by the update.
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}

// IsEmpty reports whether the update contains no fields to apply.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsCompleted == nil
}
