package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/uptrace/bun"
)

// Listing is a single business record in the directory. Name is the natural
// key: imports and the public submission endpoint upsert on it.
type Listing struct {
	bun.BaseModel `bun:"table:listings,alias:lst"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull,unique" json:"name"`
	Category    *string   `bun:"category" json:"category"`
	City        *string   `bun:"city" json:"city"`
	Phone       *string   `bun:"phone" json:"phone"`
	Website     *string   `bun:"website" json:"website"`
	Address     *string   `bun:"address" json:"address"`
	MapsURL     *string   `bun:"maps_url" json:"mapsUrl"`
	SeoTitle    *string   `bun:"seo_title" json:"seoTitle"`
	Description *string   `bun:"description" json:"description"`
	Rating      *float64  `bun:"rating" json:"rating"`
	Latitude    *float64  `bun:"latitude" json:"latitude"`
	Longitude   *float64  `bun:"longitude" json:"longitude"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

// HasCoordinates reports whether the listing is usable for map features.
// A listing with only one of the pair is treated as having neither.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// HasPhone reports a usable phone number.
func (l *Listing) HasPhone() bool {
	return l.Phone != nil && *l.Phone != ""
}

// HasWebsite reports a usable website link.
func (l *Listing) HasWebsite() bool {
	return l.Website != nil && *l.Website != ""
}

// ListingQueryParams are the user-supplied filters for the listing search
// surface. Zero values mean "not filtered". Cities and Categories accept
// multiple values (repeated or comma-separated params), matched exactly.
type ListingQueryParams struct {
	Cities     []string
	Categories []string
	Search     string
	MinRating  float64
	Page       int
	Limit      int
}

// Pagination is the paging block returned next to listing pages.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// CityGroup is the per-city aggregate for dropdowns and the best-of index.
type CityGroup struct {
	Name  string `bun:"name" json:"name"`
	Count int    `bun:"count" json:"count"`
}

// CategoryGroup additionally carries the mean rating over rated listings.
// AvgRating is nil when the group has no rated listings; it is then omitted
// from the JSON rather than reported as 0 or NaN.
type CategoryGroup struct {
	Name      string   `bun:"name" json:"name"`
	Count     int      `bun:"count" json:"count"`
	AvgRating *float64 `bun:"avg_rating" json:"avgRating,omitempty"`
}

// UpsertListingRequest is the submission payload. Numeric fields arrive from
// an untyped transport that sometimes sends "", "null" or numbers-as-strings;
// NullableFloat normalizes all of those to absent at decode time.
type UpsertListingRequest struct {
	Name        string        `json:"name" validate:"required"`
	Category    *string       `json:"category"`
	City        *string       `json:"city"`
	Phone       *string       `json:"phone"`
	Website     *string       `json:"website"`
	Address     *string       `json:"address"`
	MapsURL     *string       `json:"mapsUrl"`
	SeoTitle    *string       `json:"seoTitle"`
	Description *string       `json:"description"`
	Rating      NullableFloat `json:"rating"`
	Latitude    NullableFloat `json:"latitude"`
	Longitude   NullableFloat `json:"longitude"`
}

// NullableFloat decodes a JSON number, a numeric string, an empty string,
// the literal string "null", or JSON null. Everything non-numeric becomes
// absent; a NaN never reaches the store.
type NullableFloat struct {
	Value *float64
}

func (n *NullableFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" || s == "null" {
			n.Value = nil
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			n.Value = nil
			return nil
		}
		n.Value = &f
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	n.Value = &f
	return nil
}

func (n NullableFloat) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// SitemapEntry is the minimal projection used for the server-side sitemap.
type SitemapEntry struct {
	ID        int64     `bun:"id"`
	UpdatedAt time.Time `bun:"updated_at"`
}
