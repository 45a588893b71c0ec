package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"datessouq/internal/config"
	"datessouq/internal/services"

	"go.uber.org/zap"
)

type SitemapHandler struct {
	service *services.ListingService
	cfg     *config.Config
	logr    *zap.Logger
}

func NewSitemapHandler(svc *services.ListingService, cfg *config.Config, logr *zap.Logger) *SitemapHandler {
	return &SitemapHandler{service: svc, cfg: cfg, logr: logr}
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Serve handles GET /sitemap.xml with one entry per listing, newest first.
func (h *SitemapHandler) Serve(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.SitemapEntries(r.Context())
	if err != nil {
		h.logr.Error("failed to build sitemap", zap.Error(err))
		http.Error(w, "failed to build sitemap", http.StatusInternalServerError)
		return
	}

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, len(entries)),
	}
	for i, e := range entries {
		set.URLs[i] = urlEntry{
			Loc:        fmt.Sprintf("%s/listing/%d", h.cfg.SiteURL, e.ID),
			LastMod:    e.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.9",
		}
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(set)
}
