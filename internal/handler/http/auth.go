package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/utils"
	"github.com/MKhiriev/tasky/models"
)

// sessionCookieName is the cookie carrying the signed session token between
// client and server. Set on login, cleared on logout.
const sessionCookieName = "tasky"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.Register(ctx, req); err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	utils.WriteMessage(w, "user registered successfully", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Login(), req.Password)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{User: foundUser, Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	// Clearing the cookie removes the client's automatic means of presenting
	// the token; the token itself stays valid until its natural expiry.
	clearSessionCookie(w)
	utils.WriteMessage(w, "you have successfully logged out", http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword); err != nil {
		log.Err(err).Str("user_id", userID).Msg("password change failed")
		writeError(w, err)
		return
	}

	utils.WriteMessage(w, "successfully updated password", http.StatusOK)
}

// setSessionCookie places the signed token into an HTTP-only, secure,
// cross-site-restricted cookie scoped to the API origin.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
