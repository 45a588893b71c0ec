// Package ranking holds the in-memory filter and rank logic for best-of
// collections. It never touches the store: the input set is already sorted
// by rating descending, and everything here is deterministic given its input.
package ranking

import "datessouq/internal/models"

// FilterState mirrors the best-of page controls.
type FilterState struct {
	MinRating  float64 `json:"minRating"`
	HasPhone   bool    `json:"hasPhone"`
	HasWebsite bool    `json:"hasWebsite"`
}

// Active reports whether any control deviates from its default.
func (f FilterState) Active() bool {
	return f.MinRating > 0 || f.HasPhone || f.HasWebsite
}

// Badge tiers for ranked entries. Ranks 1-3 get the medal tiers, the rest
// share the standard tier.
const (
	TierGold     = "gold"
	TierSilver   = "silver"
	TierBronze   = "bronze"
	TierStandard = "standard"
)

// EmptyKind distinguishes "nothing in the collection at all" from "the
// active filters matched nothing", so the caller can offer a filter reset
// instead of a generic empty-directory message.
type EmptyKind string

const (
	EmptyNone       EmptyKind = ""           // results present
	EmptyCollection EmptyKind = "collection" // the unfiltered set is empty
	EmptyFiltered   EmptyKind = "filtered"   // filters excluded every listing
)

// RankedListing is a listing with its recomputed position. Rank is never
// stored; it is assigned fresh per view from the filtered order.
type RankedListing struct {
	*models.Listing
	Rank int    `json:"rank"`
	Tier string `json:"tier"`
}

// Result is the outcome of filtering and ranking one collection.
type Result struct {
	Items []RankedListing
	Empty EmptyKind
}

// passes applies the filter predicate from the best-of page: a zero
// MinRating matches everything, otherwise unrated listings never match.
func passes(l *models.Listing, f FilterState) bool {
	if f.MinRating > 0 && (l.Rating == nil || *l.Rating < f.MinRating) {
		return false
	}
	if f.HasPhone && !l.HasPhone() {
		return false
	}
	if f.HasWebsite && !l.HasWebsite() {
		return false
	}
	return true
}

// Apply returns the subset of listings passing the filter state, preserving
// the input's relative order.
func Apply(listings []*models.Listing, f FilterState) []*models.Listing {
	out := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if passes(l, f) {
			out = append(out, l)
		}
	}
	return out
}

// Rank assigns contiguous 1-based ranks and badge tiers in filtered order.
func Rank(filtered []*models.Listing) []RankedListing {
	ranked := make([]RankedListing, len(filtered))
	for i, l := range filtered {
		ranked[i] = RankedListing{
			Listing: l,
			Rank:    i + 1,
			Tier:    tierFor(i + 1),
		}
	}
	return ranked
}

func tierFor(rank int) string {
	switch rank {
	case 1:
		return TierGold
	case 2:
		return TierSilver
	case 3:
		return TierBronze
	default:
		return TierStandard
	}
}

// Run filters, ranks and classifies the empty state in one pass.
func Run(listings []*models.Listing, f FilterState) Result {
	filtered := Apply(listings, f)

	res := Result{Items: Rank(filtered)}
	switch {
	case len(listings) == 0:
		res.Empty = EmptyCollection
	case len(filtered) == 0:
		res.Empty = EmptyFiltered
	}
	return res
}

// CoverageStats summarise a collection for the stats panel. Percentages and
// ratings are computed over the UNFILTERED set so they stay stable while
// users toggle filters; only ShownCount follows the filtered set.
type CoverageStats struct {
	TotalCount        int      `json:"totalCount"`
	ShownCount        int      `json:"shownCount"`
	PhonePercentage   int      `json:"phonePercentage"`
	WebsitePercentage int      `json:"websitePercentage"`
	AvgRating         *float64 `json:"avgRating,omitempty"`
	TopRating         *float64 `json:"topRating,omitempty"`
}

// Coverage computes stats over the unfiltered set, with shownCount taken
// from the filtered subset. AvgRating and TopRating consider only rated
// listings and are absent when none exist.
func Coverage(all []*models.Listing, shownCount int) CoverageStats {
	stats := CoverageStats{ShownCount: shownCount, TotalCount: len(all)}
	if len(all) == 0 {
		return stats
	}

	var phone, website, rated int
	var sum, top float64
	for _, l := range all {
		if l.HasPhone() {
			phone++
		}
		if l.HasWebsite() {
			website++
		}
		if l.Rating != nil {
			rated++
			sum += *l.Rating
			if *l.Rating > top {
				top = *l.Rating
			}
		}
	}

	stats.PhonePercentage = percent(phone, len(all))
	stats.WebsitePercentage = percent(website, len(all))
	if rated > 0 {
		avg := sum / float64(rated)
		stats.AvgRating = &avg
		stats.TopRating = &top
	}
	return stats
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
