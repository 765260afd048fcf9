package models

// MessageResponse is the uniform JSON body for status and error replies.
// Every non-2xx response carries one of these.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on successful authentication. It carries the
// public user snapshot (hash excluded via the User JSON tags) and the signed
// token for clients that prefer bearer-header transport over the cookie.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// VersionResponse reports the running application version.
type VersionResponse struct {
	Version string `json:"version"`
}
