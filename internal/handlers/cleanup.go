package handlers

import (
	"net/http"

	"datessouq/internal/services"

	"go.uber.org/zap"
)

// CleanupHandler exposes the non-dates purge tooling to admins.
type CleanupHandler struct {
	service *services.CleanupService
	logr    *zap.Logger
}

func NewCleanupHandler(svc *services.CleanupService, logr *zap.Logger) *CleanupHandler {
	return &CleanupHandler{service: svc, logr: logr}
}

// Identify handles GET /admin/cleanup: lists listings the keyword
// heuristics flag as outside the dates domain, without touching them.
func (h *CleanupHandler) Identify(w http.ResponseWriter, r *http.Request) {
	suspicious, err := h.service.Identify(r.Context())
	if err != nil {
		h.logr.Error("failed to identify non-dates listings", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to scan listings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    suspicious,
		"count":   len(suspicious),
	})
}

// Purge handles DELETE /admin/cleanup: hard-deletes everything Identify
// flags.
func (h *CleanupHandler) Purge(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.Purge(r.Context())
	if err != nil {
		h.logr.Error("failed to purge non-dates listings", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to purge listings")
		return
	}

	h.logr.Info("purged non-dates listings", zap.Int("removed", removed))
	writeData(w, http.StatusOK, map[string]any{"removed": removed})
}
