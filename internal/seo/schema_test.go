package seo

import (
	"testing"

	"datessouq/internal/models"
	"datessouq/internal/ranking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteURL = "https://datessouq.example"

func ptr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestOrganization(t *testing.T) {
	s := Organization(siteURL)
	assert.Equal(t, "Organization", s["@type"])
	assert.Equal(t, siteURL, s["url"])
}

func TestBreadcrumbs(t *testing.T) {
	s := Breadcrumbs(siteURL, []Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Best Dates", Path: "/best"},
		{Name: "Riyadh", Path: "/best/riyadh"},
	})

	items, ok := s["itemListElement"].([]Schema)
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, 1, items[0]["position"])
	assert.Equal(t, 3, items[2]["position"])
	assert.Equal(t, siteURL+"/best/riyadh", items[2]["item"])
}

func TestLocalBusinessOmitsAbsentFields(t *testing.T) {
	l := &models.Listing{ID: 7, Name: "Hail Dates"}

	s := LocalBusiness(siteURL, l)
	assert.Equal(t, "Hail Dates", s["name"])
	assert.Equal(t, siteURL+"/listing/7", s["url"])
	assert.NotContains(t, s, "aggregateRating")
	assert.NotContains(t, s, "geo")
	assert.NotContains(t, s, "telephone")
	assert.NotContains(t, s, "sameAs")
}

func TestLocalBusinessRatedWithCoordinates(t *testing.T) {
	l := &models.Listing{
		ID:        3,
		Name:      "Al Qassim Dates",
		Phone:     strPtr("+966500000000"),
		Website:   strPtr("https://example.sa"),
		Rating:    ptr(4.8),
		Latitude:  ptr(26.33),
		Longitude: ptr(43.97),
	}

	s := LocalBusiness(siteURL, l)

	rating, ok := s["aggregateRating"].(Schema)
	require.True(t, ok)
	assert.Equal(t, 4.8, rating["ratingValue"])

	geo, ok := s["geo"].(Schema)
	require.True(t, ok)
	assert.Equal(t, 26.33, geo["latitude"])
	assert.Equal(t, 43.97, geo["longitude"])
}

func TestLocalBusinessHalfCoordinatePair(t *testing.T) {
	l := &models.Listing{ID: 9, Name: "Lone Lat", Latitude: ptr(24.7)}
	s := LocalBusiness(siteURL, l)
	assert.NotContains(t, s, "geo")
}

func TestItemListPositionsFollowRanks(t *testing.T) {
	items := []ranking.RankedListing{
		{Listing: &models.Listing{ID: 1, Name: "first"}, Rank: 1, Tier: ranking.TierGold},
		{Listing: &models.Listing{ID: 2, Name: "second"}, Rank: 2, Tier: ranking.TierSilver},
	}

	s := ItemList(siteURL, "Best Dates in Riyadh", "Top dates suppliers", items)
	assert.Equal(t, 2, s["numberOfItems"])

	elements, ok := s["itemListElement"].([]Schema)
	require.True(t, ok)
	require.Len(t, elements, 2)
	assert.Equal(t, 1, elements[0]["position"])
	assert.Equal(t, 2, elements[1]["position"])
}
