package http

import (
	"net/http"

	"github.com/MKhiriev/tasky/internal/utils"
	"github.com/MKhiriev/tasky/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte("<h1>Welcome to Tasky</h1>"))
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.VersionResponse{Version: h.version}, http.StatusOK)
}
