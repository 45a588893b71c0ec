package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"datessouq/internal/models"
	"datessouq/internal/services"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service  *services.ContactService
	logr     *zap.Logger
	validate *validator.Validate
}

func NewContactHandler(svc *services.ContactService, logr *zap.Logger) *ContactHandler {
	return &ContactHandler{service: svc, logr: logr, validate: validator.New()}
}

// Create handles POST /contact.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logr.Warn("failed to decode contact body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Name, a valid email and a message are required")
		return
	}

	ref, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logr.Error("failed to store contact message", zap.Error(err), zap.String("email", req.Email))
		writeError(w, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	h.logr.Info("contact message received",
		zap.String("email", req.Email),
		zap.String("reference", ref.String()))
	writeData(w, http.StatusOK, map[string]any{"reference": ref})
}

// List handles GET /admin/contact.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	msgs, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.logr.Error("failed to list contact messages", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    msgs,
		"count":   len(msgs),
		"limit":   limit,
		"offset":  offset,
	})
}
