package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, generated at creation time
	// and immutable afterwards.
	ID string `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// UserName is the unique handle chosen by the user.
	// Usable as a login identifier interchangeably with Email.
	UserName string `json:"userName"`

	// Email is the unique email address of the user.
	// Usable as a login identifier interchangeably with UserName.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized and must not leave the store/service boundary.
	PasswordHash string `json:"-"`

	// Avatar is an optional reference to the user's avatar image.
	// Nil when the user has not set one.
	Avatar *string `json:"avatar"`

	// DateJoined is the timestamp when the account was created.
	// Set once, immutable.
	DateJoined time.Time `json:"dateJoined"`

	// LastUpdated is refreshed on every mutation of the record.
	LastUpdated time.Time `json:"lastUpdated"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate carries the mutable profile fields of a [User].
// Nil fields are left untouched by the update.
type ProfileUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	UserName  *string `json:"userName"`
	Email     *string `json:"email"`
	Avatar    *string `json:"avatar"`
}

// IsEmpty reports whether the update contains no fields to apply.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.UserName == nil &&
		p.Email == nil && p.Avatar == nil
}
