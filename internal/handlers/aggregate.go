package handlers

import (
	"net/http"

	"datessouq/internal/services"

	"go.uber.org/zap"
)

type AggregateHandler struct {
	service *services.AggregateService
	logr    *zap.Logger
}

func NewAggregateHandler(svc *services.AggregateService, logr *zap.Logger) *AggregateHandler {
	return &AggregateHandler{service: svc, logr: logr}
}

// Cities handles GET /cities: every city with a count, no size threshold.
// Filter dropdowns show all groups regardless of size.
func (h *AggregateHandler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.Cities(r.Context())
	if err != nil {
		h.logr.Error("failed to fetch city groups", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch cities")
		return
	}
	writeData(w, http.StatusOK, cities)
}

// Categories handles GET /categories: counts plus mean rating where one
// exists.
func (h *AggregateHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logr.Error("failed to fetch category groups", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	writeData(w, http.StatusOK, categories)
}

// BestOfIndex handles GET /best: the thresholded collections for the
// best-of landing page.
func (h *AggregateHandler) BestOfIndex(w http.ResponseWriter, r *http.Request) {
	cities, categories, err := h.service.BestOfIndex(r.Context())
	if err != nil {
		h.logr.Error("failed to fetch best-of index", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch collections")
		return
	}
	writeData(w, http.StatusOK, map[string]any{
		"cities":     cities,
		"categories": categories,
	})
}
