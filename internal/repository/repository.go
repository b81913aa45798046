package repository

import (
	"context"

	"github.com/community-cms/internal/database"
	"github.com/community-cms/internal/models"
)

// NewsRepository defines the interface for news post data operations
type NewsRepository interface {
	List(ctx context.Context) ([]*models.NewsPost, error)
	GetByID(ctx context.Context, id int64) (*models.NewsPost, error)
	Create(ctx context.Context, post *models.NewsPost) error
	Update(ctx context.Context, id int64, post *models.NewsPost) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// FaqRepository defines the interface for FAQ entry data operations
type FaqRepository interface {
	List(ctx context.Context) ([]*models.FaqEntry, error)
	GetByID(ctx context.Context, id int64) (*models.FaqEntry, error)
	Create(ctx context.Context, entry *models.FaqEntry) error
	Update(ctx context.Context, id int64, entry *models.FaqEntry) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ResourceRepository defines the interface for resource data operations
type ResourceRepository interface {
	List(ctx context.Context) ([]*models.Resource, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	Create(ctx context.Context, res *models.Resource) error
	Update(ctx context.Context, id int64, res *models.Resource) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// WaitlistRepository defines the interface for the append-only waitlist log
type WaitlistRepository interface {
	Append(ctx context.Context, email string) (*models.WaitlistEntry, error)
	List(ctx context.Context) ([]*models.WaitlistEntry, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	News     NewsRepository
	Faq      FaqRepository
	Resource ResourceRepository
	Waitlist WaitlistRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		News:     NewNewsRepo(db),
		Faq:      NewFaqRepo(db),
		Resource: NewResourceRepo(db),
		Waitlist: NewWaitlistRepo(db),
	}
}
