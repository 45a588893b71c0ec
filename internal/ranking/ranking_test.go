package ranking

import (
	"testing"

	"datessouq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

// listing builds a test listing; rating < 0 means unrated.
func listing(name string, rating float64, phone, website bool) *models.Listing {
	l := &models.Listing{Name: name}
	if rating >= 0 {
		l.Rating = ptr(rating)
	}
	if phone {
		l.Phone = strPtr("+966500000000")
	}
	if website {
		l.Website = strPtr("https://example.sa")
	}
	return l
}

func names(listings []*models.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Name
	}
	return out
}

func TestFilterStateActive(t *testing.T) {
	assert.False(t, FilterState{}.Active())
	assert.True(t, FilterState{MinRating: 4}.Active())
	assert.True(t, FilterState{HasPhone: true}.Active())
	assert.True(t, FilterState{HasWebsite: true}.Active())
}

func TestApplyPreservesOrder(t *testing.T) {
	in := []*models.Listing{
		listing("a", 4.9, true, true),
		listing("b", 4.5, false, true),
		listing("c", 4.5, true, false),
		listing("d", 3.0, true, true),
	}

	got := Apply(in, FilterState{MinRating: 4})
	assert.Equal(t, []string{"a", "b", "c"}, names(got))

	got = Apply(in, FilterState{MinRating: 4, HasPhone: true})
	assert.Equal(t, []string{"a", "c"}, names(got))
}

func TestApplyExcludesUnratedForAnyMinRating(t *testing.T) {
	in := []*models.Listing{
		listing("rated", 0.5, false, false),
		listing("unrated", -1, false, false),
	}

	// Even the smallest positive threshold hides unrated listings.
	got := Apply(in, FilterState{MinRating: 0.1})
	assert.Equal(t, []string{"rated"}, names(got))

	// With no threshold both survive.
	got = Apply(in, FilterState{})
	assert.Len(t, got, 2)
}

func TestApplyIdempotent(t *testing.T) {
	in := []*models.Listing{
		listing("a", 4.9, true, true),
		listing("b", 4.1, false, false),
		listing("c", -1, true, true),
	}
	f := FilterState{MinRating: 4, HasPhone: true}

	once := Apply(in, f)
	twice := Apply(once, f)
	assert.Equal(t, names(once), names(twice))
}

func TestRankAssignsContiguousRanksAndTiers(t *testing.T) {
	in := []*models.Listing{
		listing("first", 5, false, false),
		listing("second", 4.8, false, false),
		listing("third", 4.7, false, false),
		listing("fourth", 4.6, false, false),
		listing("fifth", 4.5, false, false),
	}

	ranked := Rank(in)
	require.Len(t, ranked, 5)

	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, TierGold, ranked[0].Tier)
	assert.Equal(t, TierSilver, ranked[1].Tier)
	assert.Equal(t, TierBronze, ranked[2].Tier)
	assert.Equal(t, TierStandard, ranked[3].Tier)
	assert.Equal(t, TierStandard, ranked[4].Tier)
}

func TestRanksRecomputedAfterFiltering(t *testing.T) {
	// Five listings, filter keeps #2 and #4 of the original order: the
	// survivors get fresh ranks 1 and 2, not their old positions.
	in := []*models.Listing{
		listing("a", 4.9, false, false),
		listing("b", 4.8, true, false),
		listing("c", 4.7, false, false),
		listing("d", 4.6, true, false),
		listing("e", 4.5, false, false),
	}

	res := Run(in, FilterState{HasPhone: true})
	require.Len(t, res.Items, 2)
	assert.Equal(t, "b", res.Items[0].Name)
	assert.Equal(t, 1, res.Items[0].Rank)
	assert.Equal(t, TierGold, res.Items[0].Tier)
	assert.Equal(t, "d", res.Items[1].Name)
	assert.Equal(t, 2, res.Items[1].Rank)
	assert.Equal(t, TierSilver, res.Items[1].Tier)
}

func TestRunEmptyStates(t *testing.T) {
	tests := []struct {
		name     string
		listings []*models.Listing
		filters  FilterState
		want     EmptyKind
	}{
		{
			name:     "results present",
			listings: []*models.Listing{listing("a", 4, false, false)},
			want:     EmptyNone,
		},
		{
			name: "empty collection",
			want: EmptyCollection,
		},
		{
			name:     "filters matched nothing",
			listings: []*models.Listing{listing("a", 3, false, false)},
			filters:  FilterState{MinRating: 4.5},
			want:     EmptyFiltered,
		},
		{
			name:    "empty collection wins over active filters",
			filters: FilterState{MinRating: 4.5},
			want:    EmptyCollection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(tt.listings, tt.filters)
			assert.Equal(t, tt.want, res.Empty)
			if tt.want != EmptyNone {
				assert.Empty(t, res.Items)
			}
		})
	}
}

func TestCoverageUsesUnfilteredSet(t *testing.T) {
	all := []*models.Listing{
		listing("a", 5, true, true),
		listing("b", 4, true, false),
		listing("c", -1, false, false),
		listing("d", 3, true, false),
	}

	// shownCount comes from a filtered subset; everything else from all.
	stats := Coverage(all, 2)

	assert.Equal(t, 4, stats.TotalCount)
	assert.Equal(t, 2, stats.ShownCount)
	assert.Equal(t, 75, stats.PhonePercentage)
	assert.Equal(t, 25, stats.WebsitePercentage)
	require.NotNil(t, stats.AvgRating)
	assert.InDelta(t, 4.0, *stats.AvgRating, 1e-9)
	require.NotNil(t, stats.TopRating)
	assert.Equal(t, 5.0, *stats.TopRating)
}

func TestCoverageNoRatedListings(t *testing.T) {
	all := []*models.Listing{
		listing("a", -1, true, false),
		listing("b", -1, false, false),
	}

	stats := Coverage(all, 2)
	assert.Nil(t, stats.AvgRating)
	assert.Nil(t, stats.TopRating)
	assert.Equal(t, 50, stats.PhonePercentage)
}

func TestCoverageEmpty(t *testing.T) {
	stats := Coverage(nil, 0)
	assert.Equal(t, CoverageStats{}, stats)
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 50, percent(1, 2))
	assert.Equal(t, 0, percent(0, 0))
}
