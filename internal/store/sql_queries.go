package store

import (
	"time"

	"github.com/MKhiriev/tasky/models"
	sq "github.com/Masterminds/squirrel"
)

// Timestamps are always supplied from Go rather than via NOW() so the same
// statements run unchanged on both PostgreSQL and SQLite.
const (
	userColumns = `id, first_name, last_name, user_name, email, password_hash, avatar, date_joined, last_updated`

	createUser = `INSERT INTO users (id, first_name, last_name, user_name, email, password_hash, avatar, date_joined, last_updated)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + userColumns + `;`

	findUserByLogin = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1 OR user_name = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1, last_updated = $2
    WHERE id = $3;`

	taskColumns = `id, user_id, title, description, is_completed, is_deleted, date_created, last_updated`

	createTask = `INSERT INTO tasks (id, user_id, title, description, is_completed, is_deleted, date_created, last_updated)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + taskColumns + `;`

	getTasksByUser = `SELECT ` + taskColumns + `
    FROM tasks
    WHERE user_id = $1
    ORDER BY date_created DESC;`

	getTaskByID = `SELECT ` + taskColumns + `
    FROM tasks
    WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE;`

	setTaskDeleted = `UPDATE tasks
    SET is_deleted = $1, last_updated = $2
    WHERE id = $3 AND user_id = $4 AND is_deleted = $5
    RETURNING ` + taskColumns + `;`

	setTaskCompleted = `UPDATE tasks
    SET is_completed = $1, last_updated = $2
    WHERE id = $3 AND user_id = $4 AND is_deleted = FALSE
    RETURNING ` + taskColumns + `;`

	purgeDeletedTasks = `DELETE FROM tasks
    WHERE is_deleted = TRUE AND last_updated < $1;`
)

// buildUpdateTaskQuery builds a partial UPDATE for the non-nil fields of
// update, scoped to the owned+not-deleted filter and returning the mutated row.
func buildUpdateTaskQuery(taskID, userID string, update models.TaskUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update("tasks").
		PlaceholderFormat(sq.Dollar).
		Set("last_updated", now)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.IsCompleted != nil {
		builder = builder.Set("is_completed", *update.IsCompleted)
	}

	return builder.
		Where(sq.Eq{"id": taskID, "user_id": userID, "is_deleted": false}).
		Suffix("RETURNING " + taskColumns).
		ToSql()
}

// buildUpdateProfileQuery builds a partial UPDATE for the non-nil profile
// fields of update, refreshing last_updated and returning the mutated row.
// The password hash column is intentionally out of reach of this builder.
func buildUpdateProfileQuery(userID string, update models.ProfileUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("last_updated", now)

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.UserName != nil {
		builder = builder.Set("user_name", *update.UserName)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}

	return builder.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}
