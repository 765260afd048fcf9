package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrNoTokenSignKey indicates that the JWT signing secret is missing.
	// Without it no session token can be issued or verified.
	ErrNoTokenSignKey = errors.New("token sign key is required")
	// ErrNoDatabaseDSN indicates that no backing store connection string
	// was provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")
	// ErrInvalidBcryptCost indicates a bcrypt work factor outside the range
	// supported by the bcrypt implementation.
	ErrInvalidBcryptCost = errors.New("bcrypt cost is out of range")
)
