package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"datessouq/internal/models"

	"github.com/uptrace/bun"
)

// ErrNotFound marks a lookup that matched nothing. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ListingService owns all reads and writes against the listings table.
type ListingService struct {
	db *bun.DB
}

func NewListingService(db *bun.DB) *ListingService {
	return &ListingService{db: db}
}

// Query fetches one page of listings for the given filters plus the total
// count of matches. Default ordering is rating descending with unrated rows
// last, then creation time descending so equal ratings stay deterministic.
func (s *ListingService) Query(ctx context.Context, params models.ListingQueryParams) ([]models.Listing, int, error) {
	var listings []models.Listing

	total, err := s.buildQuery(&listings, params).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, total, nil
}

// buildQuery composes the filtered, ordered select. Separate from Query so
// the filter combinations can be checked against the SQL they render.
func (s *ListingService) buildQuery(listings *[]models.Listing, params models.ListingQueryParams) *bun.SelectQuery {
	q := s.db.NewSelect().Model(listings)

	switch cities := nonEmpty(params.Cities); len(cities) {
	case 0:
	case 1:
		q = q.Where("city = ?", cities[0])
	default:
		q = q.Where("city IN (?)", bun.In(cities))
	}

	switch categories := nonEmpty(params.Categories); len(categories) {
	case 0:
	case 1:
		q = q.Where("category = ?", categories[0])
	default:
		q = q.Where("category IN (?)", bun.In(categories))
	}

	if params.MinRating > 0 {
		// SQL >= never matches NULL, so unrated listings are excluded
		q = q.Where("rating >= ?", params.MinRating)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				WhereOr("name ILIKE ?", pattern).
				WhereOr("address ILIKE ?", pattern).
				WhereOr("category ILIKE ?", pattern)
		})
	}

	return q.
		OrderExpr("rating DESC NULLS LAST").
		Order("created_at DESC")
}

// nonEmpty drops blank entries so ?city= does not filter on the empty string.
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// GetByID fetches a single listing.
func (s *ListingService) GetByID(ctx context.Context, id int64) (*models.Listing, error) {
	listing := new(models.Listing)
	err := s.db.NewSelect().Model(listing).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

// Upsert creates or updates a listing keyed on its name. Only fields present
// in the request overwrite existing values, matching the submission
// endpoint's partial-update behaviour.
func (s *ListingService) Upsert(ctx context.Context, req models.UpsertListingRequest) (*models.Listing, error) {
	now := time.Now().UTC()
	listing := &models.Listing{
		Name:        req.Name,
		Category:    req.Category,
		City:        req.City,
		Phone:       req.Phone,
		Website:     req.Website,
		Address:     req.Address,
		MapsURL:     req.MapsURL,
		SeoTitle:    req.SeoTitle,
		Description: req.Description,
		Rating:      req.Rating.Value,
		Latitude:    req.Latitude.Value,
		Longitude:   req.Longitude.Value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	q := s.db.NewInsert().
		Model(listing).
		On("CONFLICT (name) DO UPDATE").
		Set("updated_at = EXCLUDED.updated_at")

	// COALESCE keeps existing values when the request omitted a field.
	for _, col := range []string{
		"category", "city", "phone", "website", "address",
		"maps_url", "seo_title", "description", "rating", "latitude", "longitude",
	} {
		q = q.Set(col + " = COALESCE(EXCLUDED." + col + ", lst." + col + ")")
	}

	if _, err := q.Returning("*").Exec(ctx); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete removes a listing permanently. There is no soft delete; only the
// admin cleanup surfaces call this.
func (s *ListingService) Delete(ctx context.Context, id int64) error {
	res, err := s.db.NewDelete().
		Model((*models.Listing)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SitemapEntries returns every listing's id and update time, newest first.
func (s *ListingService) SitemapEntries(ctx context.Context) ([]models.SitemapEntry, error) {
	var entries []models.SitemapEntry
	err := s.db.NewSelect().
		Model((*models.Listing)(nil)).
		Column("id", "updated_at").
		Order("updated_at DESC").
		Scan(ctx, &entries)
	return entries, err
}
