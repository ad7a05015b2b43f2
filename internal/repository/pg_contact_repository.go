package repository

import (
	"context"

	"github.com/atelier-lumen/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
	Delete(ctx context.Context, id int64) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.ID and
// sub.CreatedAt from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (full_name, email, phone, subject, message, ip_address)
		 VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6)
		 RETURNING id, created_at`,
		sub.FullName, sub.Email, sub.Phone, sub.Subject, sub.Message, sub.IPAddress,
	).Scan(&sub.ID, &sub.CreatedAt)
}

// List returns submissions newest first, paginated by limit/offset.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, email, COALESCE(phone, ''), subject, COALESCE(message, ''), ip_address, created_at
		 FROM contact_submissions
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.Phone, &s.Subject, &s.Message, &s.IPAddress, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Delete removes one submission. Returns ErrNotFound when no row matched.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
