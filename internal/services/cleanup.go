package services

import (
	"context"
	"strings"

	"datessouq/internal/importer"
	"datessouq/internal/models"

	"github.com/uptrace/bun"
)

// CleanupService applies the importer's non-dates heuristics to the live
// store: listings whose name or category marks them as hospitals, banks and
// similar are identified and, on request, hard-deleted.
type CleanupService struct {
	db *bun.DB
}

func NewCleanupService(db *bun.DB) *CleanupService {
	return &CleanupService{db: db}
}

// Identify returns listings flagged by the keyword heuristics, oldest id
// first so repeated runs stay comparable.
func (s *CleanupService) Identify(ctx context.Context) ([]models.Listing, error) {
	var all []models.Listing
	err := s.db.NewSelect().
		Model(&all).
		Column("id", "name", "category", "city").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	suspicious := make([]models.Listing, 0)
	for _, l := range all {
		if importer.IsNonDatesBusiness(l.Name, strOrEmpty(l.Category)) {
			suspicious = append(suspicious, l)
		}
	}
	return suspicious, nil
}

// Purge hard-deletes every flagged listing and reports how many went.
func (s *CleanupService) Purge(ctx context.Context) (int, error) {
	suspicious, err := s.Identify(ctx)
	if err != nil {
		return 0, err
	}
	if len(suspicious) == 0 {
		return 0, nil
	}

	ids := make([]int64, len(suspicious))
	for i, l := range suspicious {
		ids[i] = l.ID
	}

	res, err := s.db.NewDelete().
		Model((*models.Listing)(nil)).
		Where("id IN (?)", bun.In(ids)).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return len(ids), nil
	}
	return int(affected), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
