package slugs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    string
	}{
		{"plain", "Riyadh", "riyadh"},
		{"percent encoded arabic", "%D8%A7%D9%84%D8%B1%D9%8A%D8%A7%D8%B6", "الرياض"},
		{"encoded space", "al%20kharj", "al kharj"},
		{"surrounding whitespace", "  Jeddah ", "jeddah"},
		{"undecodable kept as-is", "100%ok", "100%ok"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.segment))
		})
	}
}

func TestTitleize(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"dates-shop", "Dates Shop"},
		{"riyadh", "Riyadh"},
		{"al-madinah-al-munawwarah", "Al Madinah Al Munawwarah"},
		{"dates--shop", "Dates Shop"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, Titleize(tt.slug))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Dates Shop", "dates-shop"},
		{"Riyadh", "riyadh"},
		{"Al-Kharj  City", "al-kharj-city"},
		{"  spaced  ", "spaced"},
		{"100% Dates!", "100-dates"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.text))
		})
	}
}

func TestSlugifyNonLatinNames(t *testing.T) {
	// Arabic names have no ASCII letters; the slug must still be non-empty
	// and decode back to the stored value for matching.
	slug := Slugify("الرياض")
	assert.NotEmpty(t, slug)
	assert.NotContains(t, slug, " ")
	assert.Equal(t, "الرياض", Normalize(slug))

	multi := Slugify("تمور القصيم")
	assert.Equal(t, "تمور-القصيم", Normalize(multi))
}

func TestSlugifyTitleizeRoundTrip(t *testing.T) {
	for _, name := range []string{"Dates Shop", "Riyadh", "Dates Manufacturer"} {
		assert.Equal(t, name, Titleize(Slugify(name)))
	}
}
