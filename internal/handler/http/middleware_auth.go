package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/utils"
)

// auth is the access guard: an HTTP middleware that enforces token-based
// authentication for every route registered behind it.
//
// The bearer credential is read from the session cookie set at login, with
// the "Authorization: Bearer" header as a fallback for clients that prefer
// header transport. The token is validated via
// [service.AuthService.ParseToken] and — on success — the authenticated
// user's ID is stored in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// Rejections:
//   - no credential in either carrier → 401 "authentication required"
//   - signature or expiry check fails → 403 "invalid or expired token"
//
// A foreign or stale token never reaches the task layer: everything behind
// this middleware can assume a verified identity in the context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			utils.WriteMessage(w, "invalid or expired token", http.StatusForbidden)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest extracts the bearer credential from the request,
// checking the session cookie first and the "Authorization" header second.
// An empty cookie value (a cleared session) does not shadow the header.
//
// It returns the following sentinel errors:
//   - [ErrNoAuthCredential] — neither carrier holds a token.
//   - [ErrInvalidAuthorizationHeader] — the header cannot be split into
//     scheme and token parts.
//   - [ErrEmptyToken] — the header token part is empty.
func getTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAuthCredential
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authHeader), " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// currentUserID returns the authenticated user ID placed in the context by
// the auth middleware. The bool result is false only if a handler was wired
// outside the guarded group by mistake.
func currentUserID(r *http.Request) (string, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
