package repository

import (
	"context"

	"github.com/community-cms/internal/database"
	"github.com/community-cms/internal/models"
)

// waitlistRepo is the concrete implementation of WaitlistRepository. The
// waitlist is an append-only log, so it does not ride the crud core: there
// is no get, update or delete.
type waitlistRepo struct {
	db *database.DB
}

// NewWaitlistRepo creates a new waitlist repository
func NewWaitlistRepo(db *database.DB) WaitlistRepository {
	return &waitlistRepo{db: db}
}

// Append records a signup. Duplicate emails are allowed.
func (r *waitlistRepo) Append(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	entry := &models.WaitlistEntry{Email: email}
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO waitlist (email) VALUES ($1) RETURNING id", email,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns all waitlist entries in signup order.
func (r *waitlistRepo) List(ctx context.Context) ([]*models.WaitlistEntry, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, email FROM waitlist ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.WaitlistEntry
	for rows.Next() {
		var entry models.WaitlistEntry
		if err := rows.Scan(&entry.ID, &entry.Email); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// Count returns the total number of signups.
func (r *waitlistRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM waitlist").Scan(&count)
	return count, err
}
