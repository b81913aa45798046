package service

import (
	"context"
	"time"

	"github.com/community-cms/internal/models"
	"github.com/community-cms/internal/repository"
	"github.com/rs/zerolog"
)

// now is stubbed in tests to pin timestamp stamping.
var now = time.Now

// NewsService defines the interface for news post operations
type NewsService interface {
	List(ctx context.Context) ([]*models.NewsPost, error)
	Get(ctx context.Context, id int64) (*models.NewsPost, error)
	Create(ctx context.Context, title, content string) (*models.NewsPost, error)
	Update(ctx context.Context, id int64, title, content string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// FaqService defines the interface for FAQ entry operations
type FaqService interface {
	List(ctx context.Context) ([]*models.FaqEntry, error)
	Get(ctx context.Context, id int64) (*models.FaqEntry, error)
	Create(ctx context.Context, question, answer string) (*models.FaqEntry, error)
	Update(ctx context.Context, id int64, question, answer string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceInput carries the admin-supplied fields of a resource listing.
type ResourceInput struct {
	Title        string
	ResourceType string
	URL          string
	Description  string
	Category     string
}

// ResourceService defines the interface for resource operations
type ResourceService interface {
	List(ctx context.Context) ([]*models.Resource, error)
	Get(ctx context.Context, id int64) (*models.Resource, error)
	Create(ctx context.Context, in ResourceInput) (*models.Resource, error)
	Update(ctx context.Context, id int64, in ResourceInput) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// WaitlistService defines the interface for waitlist operations
type WaitlistService interface {
	Join(ctx context.Context, email string) (*models.WaitlistEntry, error)
	Entries(ctx context.Context) ([]*models.WaitlistEntry, error)
	TotalMembers(ctx context.Context) int
}

// Services holds all service interfaces
type Services struct {
	News     NewsService
	Faq      FaqService
	Resource ResourceService
	Waitlist WaitlistService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		News:     newNewsService(repos.News, log),
		Faq:      newFaqService(repos.Faq, log),
		Resource: newResourceService(repos.Resource, log),
		Waitlist: newWaitlistService(repos.Waitlist, log),
	}
}
