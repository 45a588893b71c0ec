package services

import (
	"context"
	"strings"

	"datessouq/internal/models"
	"datessouq/internal/slugs"

	"github.com/uptrace/bun"
)

// CollectionType says which field a slug resolved against.
type CollectionType string

const (
	CollectionCity     CollectionType = "city"
	CollectionCategory CollectionType = "category"
)

// BestOfCollection is a resolved slug: the rated listings of the matched
// city or category, rating-sorted, plus the display name taken from the
// first match's stored value (original casing preserved).
type BestOfCollection struct {
	Listings    []*models.Listing
	Type        CollectionType
	DisplayName string
}

// BestOfService resolves best-of slugs against the store.
type BestOfService struct {
	db    *bun.DB
	limit int // result-set cap per collection
}

func NewBestOfService(db *bun.DB, limit int) *BestOfService {
	return &BestOfService{db: db, limit: limit}
}

// Resolve maps a URL path segment to a collection. Two passes in order:
// case-insensitive substring match against cities, then against categories.
// A miss on both returns ErrNotFound, which the caller renders as 404.
func (s *BestOfService) Resolve(ctx context.Context, slug string) (*BestOfCollection, error) {
	pattern := searchPattern(slugs.Normalize(slug))

	listings, err := s.matchColumn(ctx, "city", pattern)
	if err != nil {
		return nil, err
	}
	if len(listings) > 0 {
		return &BestOfCollection{
			Listings:    listings,
			Type:        CollectionCity,
			DisplayName: displayName(listings[0].City, slug),
		}, nil
	}

	listings, err = s.matchColumn(ctx, "category", pattern)
	if err != nil {
		return nil, err
	}
	if len(listings) > 0 {
		return &BestOfCollection{
			Listings:    listings,
			Type:        CollectionCategory,
			DisplayName: displayName(listings[0].Category, slug),
		}, nil
	}

	return nil, ErrNotFound
}

// matchColumn fetches rated listings whose column value contains the
// pattern, best first. column is a fixed identifier, never user input.
func (s *BestOfService) matchColumn(ctx context.Context, column, pattern string) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := s.db.NewSelect().
		Model(&listings).
		Where("? ILIKE ?", bun.Ident(column), pattern).
		Where("rating IS NOT NULL").
		OrderExpr("rating DESC").
		Order("created_at DESC").
		Limit(s.limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// displayName prefers the stored field value and falls back to the
// title-cased slug when the match carries no value.
func displayName(stored *string, slug string) string {
	if stored != nil && *stored != "" {
		return *stored
	}
	return slugs.Titleize(slug)
}

// searchPattern turns a decoded slug into an ILIKE pattern. Slugs hyphenate
// spaces, so "khalas-dates" must match "Khalas Dates"; LIKE metacharacters in
// the decoded text are escaped so they match literally.
func searchPattern(decoded string) string {
	return "%" + escapeLike(replaceHyphens(decoded)) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func replaceHyphens(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == '-' {
			out[i] = ' '
		}
	}
	return string(out)
}
