package services

import (
	"context"
	"time"

	"datessouq/internal/models"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ContactService stores contact form submissions.
type ContactService struct {
	db *bun.DB
}

func NewContactService(db *bun.DB) *ContactService {
	return &ContactService{db: db}
}

// Create stores a submission and returns the public reference handed back
// to the sender.
func (s *ContactService) Create(ctx context.Context, req models.ContactRequest) (uuid.UUID, error) {
	msg := &models.ContactMessage{
		Reference: uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(msg).Exec(ctx); err != nil {
		return uuid.Nil, err
	}
	return msg.Reference, nil
}

// List returns submissions newest first, for the admin surface.
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := s.db.NewSelect().
		Model(&msgs).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if msgs == nil {
		msgs = []models.ContactMessage{}
	}
	return msgs, err
}
