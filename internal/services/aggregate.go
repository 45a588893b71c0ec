package services

import (
	"context"
	"sort"

	"datessouq/internal/models"
	"datessouq/internal/slugs"

	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

// AggregateService computes the grouped views: city and category counts for
// the filter dropdowns and the thresholded collections behind the best-of
// index. Nothing here is persisted; every call recomputes from the store.
type AggregateService struct {
	db *bun.DB

	// Groups smaller than this are excluded from best-of collections.
	// Dropdown groupings ignore it. Applied uniformly to cities and
	// categories.
	minGroupSize int
}

func NewAggregateService(db *bun.DB, minGroupSize int) *AggregateService {
	return &AggregateService{db: db, minGroupSize: minGroupSize}
}

// Cities returns every distinct non-null city with its listing count,
// ordered by count descending then name ascending.
func (s *AggregateService) Cities(ctx context.Context) ([]models.CityGroup, error) {
	var groups []models.CityGroup
	err := s.db.NewSelect().
		Model((*models.Listing)(nil)).
		ColumnExpr("city AS name").
		ColumnExpr("count(*) AS count").
		Where("city IS NOT NULL").
		GroupExpr("city").
		Scan(ctx, &groups)
	if err != nil {
		return nil, err
	}
	SortCityGroups(groups)
	return groups, nil
}

// Categories returns every distinct non-null category with its count and the
// mean rating over rated listings. AVG ignores NULLs, so a group with no
// rated listings comes back with a nil average rather than zero.
func (s *AggregateService) Categories(ctx context.Context) ([]models.CategoryGroup, error) {
	var groups []models.CategoryGroup
	err := s.db.NewSelect().
		Model((*models.Listing)(nil)).
		ColumnExpr("category AS name").
		ColumnExpr("count(*) AS count").
		ColumnExpr("avg(rating) AS avg_rating").
		Where("category IS NOT NULL").
		GroupExpr("category").
		Scan(ctx, &groups)
	if err != nil {
		return nil, err
	}
	SortCategoryGroups(groups)
	return groups, nil
}

// Collection is one best-of index entry: a city or category big enough to
// carry its own ranked page.
type Collection struct {
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Count     int      `json:"count"`
	AvgRating *float64 `json:"avgRating,omitempty"`
}

// BestOfIndex returns the city and category collections for the best-of
// landing page. Only rated listings count toward the index, and groups below
// the minimum size are dropped. The two groupings are independent, so they
// are fetched concurrently.
func (s *AggregateService) BestOfIndex(ctx context.Context) (cities, categories []Collection, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var e error
		cities, e = s.ratedCollections(gctx, "city")
		return e
	})
	g.Go(func() error {
		var e error
		categories, e = s.ratedCollections(gctx, "category")
		return e
	})

	if err = g.Wait(); err != nil {
		return nil, nil, err
	}
	return cities, categories, nil
}

// ratedCollections groups rated listings by the given column and applies the
// size threshold. column is one of the fixed identifiers "city"/"category",
// never user input.
func (s *AggregateService) ratedCollections(ctx context.Context, column string) ([]Collection, error) {
	var groups []models.CategoryGroup
	err := s.db.NewSelect().
		Model((*models.Listing)(nil)).
		ColumnExpr("? AS name", bun.Ident(column)).
		ColumnExpr("count(*) AS count").
		ColumnExpr("avg(rating) AS avg_rating").
		Where("? IS NOT NULL", bun.Ident(column)).
		Where("rating IS NOT NULL").
		GroupExpr("?", bun.Ident(column)).
		Scan(ctx, &groups)
	if err != nil {
		return nil, err
	}

	groups = FilterByMinCount(groups, s.minGroupSize)
	SortCategoryGroups(groups)

	collections := make([]Collection, len(groups))
	for i, gr := range groups {
		collections[i] = Collection{
			Name:      gr.Name,
			Slug:      slugs.Slugify(gr.Name),
			Count:     gr.Count,
			AvgRating: gr.AvgRating,
		}
	}
	return collections, nil
}

// FilterByMinCount drops groups below the size threshold, preserving order.
func FilterByMinCount(groups []models.CategoryGroup, min int) []models.CategoryGroup {
	out := groups[:0]
	for _, g := range groups {
		if g.Count >= min {
			out = append(out, g)
		}
	}
	return out
}

// SortCityGroups orders by count descending, ties by name ascending.
func SortCityGroups(groups []models.CityGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Name < groups[j].Name
	})
}

// SortCategoryGroups orders by count descending, ties by name ascending.
func SortCategoryGroups(groups []models.CategoryGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Name < groups[j].Name
	})
}
