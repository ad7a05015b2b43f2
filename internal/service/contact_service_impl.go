package service

import (
	"context"
	"time"

	"github.com/atelier-lumen/backend/internal/model"
	"github.com/atelier-lumen/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stamps CreatedAt and persists the submission.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	sub.CreatedAt = time.Now().UTC()
	return s.repo.Save(ctx, sub)
}

// List returns submissions according to the given pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}

// Delete removes one submission by ID.
func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
