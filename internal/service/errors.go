package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrWeakPassword is returned by registration when the chosen password
	// scores below the minimum estimated-strength threshold. The check is a
	// one-time gate at account creation and is not re-applied at login.
	ErrWeakPassword = errors.New("please choose a stronger password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
