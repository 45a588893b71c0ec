package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"datessouq/internal/config"
	"datessouq/internal/database"
	"datessouq/internal/models"
	"datessouq/internal/seo"
	"datessouq/internal/services"
	"datessouq/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ListingHandler struct {
	service  *services.ListingService
	cfg      *config.Config
	logr     *zap.Logger
	validate *validator.Validate
}

func NewListingHandler(svc *services.ListingService, cfg *config.Config, logr *zap.Logger) *ListingHandler {
	return &ListingHandler{
		service:  svc,
		cfg:      cfg,
		logr:     logr,
		validate: validator.New(),
	}
}

// Query handles GET /businesses. city and category accept repeated or
// comma-separated values; malformed page/limit/minRating values fall back to
// defaults instead of erroring.
func (h *ListingHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := models.ListingQueryParams{
		Cities:     utils.ParseQueryList(q, "city"),
		Categories: utils.ParseQueryList(q, "category"),
		Search:     strings.TrimSpace(q.Get("search")),
		MinRating:  utils.ParseNonNegativeFloat(q.Get("minRating")),
		Page:       utils.ParsePositiveInt(q.Get("page"), 1),
		Limit:      utils.ParsePositiveInt(q.Get("limit"), h.cfg.DefaultPageLimit),
	}

	listings, total, err := h.service.Query(r.Context(), params)
	if err != nil {
		h.logr.Error("failed to query listings", zap.Error(err),
			zap.Strings("cities", params.Cities), zap.String("search", params.Search))
		writeError(w, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    listings,
		"pagination": models.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(params.Limit))),
		},
	})
}

// GetByID handles GET /businesses/{id}.
func (h *ListingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	listing, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if err == services.ErrNotFound {
			writeError(w, http.StatusNotFound, "Listing not found")
			return
		}
		h.logr.Error("failed to fetch listing", zap.Error(err), zap.Int64("id", id))
		writeError(w, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    listing,
		"schema":  seo.LocalBusiness(h.cfg.SiteURL, listing),
	})
}

// Upsert handles POST /listings: create or update keyed on name.
func (h *ListingHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logr.Warn("failed to decode upsert body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if strings.EqualFold(req.Name, "null") {
		req.Name = ""
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	listing, err := h.service.Upsert(r.Context(), req)
	if err != nil {
		if database.IsUniqueViolation(err) {
			writeError(w, http.StatusConflict, "A listing with this name already exists")
			return
		}
		h.logr.Error("failed to upsert listing", zap.Error(err), zap.String("name", req.Name))
		writeError(w, http.StatusInternalServerError, "Failed to add/update listing")
		return
	}

	h.logr.Info("listing upserted", zap.Int64("id", listing.ID), zap.String("name", listing.Name))
	writeData(w, http.StatusOK, listing)
}

// Delete handles DELETE /admin/listings/{id}. Admin only; this is a hard
// delete.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if err == services.ErrNotFound {
			writeError(w, http.StatusNotFound, "Listing not found")
			return
		}
		h.logr.Error("failed to delete listing", zap.Error(err), zap.Int64("id", id))
		writeError(w, http.StatusInternalServerError, "Failed to delete listing")
		return
	}

	h.logr.Info("listing deleted", zap.Int64("id", id))
	writeData(w, http.StatusOK, map[string]any{"deleted": id})
}
