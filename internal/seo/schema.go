// Package seo builds the schema.org JSON-LD payloads the site injects into
// its pages: Organization, BreadcrumbList, ItemList and LocalBusiness.
package seo

import (
	"fmt"

	"datessouq/internal/models"
	"datessouq/internal/ranking"
)

// Schema is an arbitrary JSON-LD object.
type Schema map[string]any

// Organization describes the site itself.
func Organization(siteURL string) Schema {
	return Schema{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        "DatesSouq",
		"url":         siteURL,
		"description": "Directory of dates suppliers in Saudi Arabia",
	}
}

// Crumb is one entry of a breadcrumb trail.
type Crumb struct {
	Name string
	Path string
}

// Breadcrumbs builds a BreadcrumbList from an ordered trail.
func Breadcrumbs(siteURL string, crumbs []Crumb) Schema {
	items := make([]Schema, len(crumbs))
	for i, c := range crumbs {
		items[i] = Schema{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     siteURL + c.Path,
		}
	}
	return Schema{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// LocalBusiness describes a single listing. AggregateRating appears only for
// rated listings and geo only when the coordinate pair is complete.
func LocalBusiness(siteURL string, l *models.Listing) Schema {
	s := Schema{
		"@context": "https://schema.org",
		"@type":    "LocalBusiness",
		"name":     l.Name,
		"url":      fmt.Sprintf("%s/listing/%d", siteURL, l.ID),
	}
	if l.Address != nil {
		s["address"] = *l.Address
	}
	if l.HasPhone() {
		s["telephone"] = *l.Phone
	}
	if l.HasWebsite() {
		s["sameAs"] = *l.Website
	}
	if l.Rating != nil {
		s["aggregateRating"] = Schema{
			"@type":       "AggregateRating",
			"ratingValue": *l.Rating,
			"bestRating":  5,
		}
	}
	if l.HasCoordinates() {
		s["geo"] = Schema{
			"@type":     "GeoCoordinates",
			"latitude":  *l.Latitude,
			"longitude": *l.Longitude,
		}
	}
	return s
}

// ItemList describes a ranked best-of collection. Positions come from the
// recomputed ranks, not from any stored order.
func ItemList(siteURL, title, description string, items []ranking.RankedListing) Schema {
	elements := make([]Schema, len(items))
	for i, it := range items {
		elements[i] = Schema{
			"@type":    "ListItem",
			"position": it.Rank,
			"item":     LocalBusiness(siteURL, it.Listing),
		}
	}
	return Schema{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            title,
		"description":     description,
		"numberOfItems":   len(items),
		"itemListElement": elements,
	}
}
