package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set issued on login.
//
// Alongside the registered claims (iss, sub, iat, exp) it embeds a snapshot
// of the user's public profile fields taken at issuance time. The snapshot is
// a convenience for clients only: the server treats a verified token as proof
// of identity (the "sub" claim) and re-fetches current profile state from the
// store whenever it is needed.
type TokenClaims struct {
	jwt.RegisteredClaims

	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	UserName  string  `json:"userName"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be placed in a cookie or an
// Authorization header.
//
// UserID is a cached copy of the "sub" (subject) claim populated during token
// generation or validation, so callers never re-parse the claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
