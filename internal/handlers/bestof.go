package handlers

import (
	"fmt"
	"net/http"

	"datessouq/internal/config"
	"datessouq/internal/ranking"
	"datessouq/internal/seo"
	"datessouq/internal/services"
	"datessouq/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BestOfHandler struct {
	service *services.BestOfService
	cfg     *config.Config
	logr    *zap.Logger
}

func NewBestOfHandler(svc *services.BestOfService, cfg *config.Config, logr *zap.Logger) *BestOfHandler {
	return &BestOfHandler{service: svc, cfg: cfg, logr: logr}
}

// Resolve handles GET /best/{slug}. The slug resolves to a city or category
// collection; minRating/hasPhone/hasWebsite query params filter it in
// memory, and ranks are recomputed from the filtered order.
func (h *BestOfHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	collection, err := h.service.Resolve(r.Context(), slug)
	if err != nil {
		if err == services.ErrNotFound {
			writeError(w, http.StatusNotFound, "No collection matches this slug")
			return
		}
		h.logr.Error("failed to resolve best-of slug", zap.Error(err), zap.String("slug", slug))
		writeError(w, http.StatusInternalServerError, "Failed to fetch collection")
		return
	}

	q := r.URL.Query()
	filters := ranking.FilterState{
		MinRating:  utils.ParseNonNegativeFloat(q.Get("minRating")),
		HasPhone:   utils.ParseBool(q.Get("hasPhone")),
		HasWebsite: utils.ParseBool(q.Get("hasWebsite")),
	}

	result := ranking.Run(collection.Listings, filters)
	// Coverage percentages stay on the unfiltered set so they do not jump
	// around as users toggle filters; only shownCount tracks the filters.
	stats := ranking.Coverage(collection.Listings, len(result.Items))

	title := pageTitle(collection)
	description := fmt.Sprintf("Top %d %s dates suppliers in Saudi Arabia, ranked by rating and reviews",
		len(collection.Listings), collection.DisplayName)

	crumbs := []seo.Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Best of", Path: "/best"},
		{Name: collection.DisplayName, Path: "/best/" + slug},
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"type":        collection.Type,
		"displayName": collection.DisplayName,
		"title":       title,
		"data":        result.Items,
		"emptyState":  result.Empty,
		"filters":     filters,
		"stats":       stats,
		"schemas": []seo.Schema{
			seo.Organization(h.cfg.SiteURL),
			seo.Breadcrumbs(h.cfg.SiteURL, crumbs),
			seo.ItemList(h.cfg.SiteURL, title, description, result.Items),
		},
	})
}

func pageTitle(c *services.BestOfCollection) string {
	if c.Type == services.CollectionCity {
		return "Best Dates in " + c.DisplayName
	}
	return "Best " + c.DisplayName + " Dates"
}
