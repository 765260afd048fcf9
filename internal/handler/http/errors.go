// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// bearer credential from a request. Callers can match against them with
// [errors.Is].
var (
	// ErrNoAuthCredential is returned by the auth middleware when neither
	// the session cookie nor the "Authorization" header carries a token.
	ErrNoAuthCredential = errors.New("no authentication credential in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when a credential carrier is present but the
	// token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in request")
)
