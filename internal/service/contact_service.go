package service

import (
	"context"

	"github.com/atelier-lumen/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new submission. sub.ID and sub.CreatedAt are populated
	// by the implementation.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// List returns submissions newest first according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)

	// Delete removes one submission by ID.
	Delete(ctx context.Context, id int64) error
}
