package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/utils"
	"github.com/MKhiriev/tasky/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
		return
	}

	// The token only proves identity; the profile is re-read from the store
	// so the response reflects the current record, not stale token claims.
	user, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile fetch failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := currentUserID(r)
	if !ok {
		utils.WriteMessage(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}
