package service

import (
	"context"

	"github.com/community-cms/internal/models"
	"github.com/community-cms/internal/repository"
	"github.com/rs/zerolog"
)

// Display format for the news creation date, e.g. "Jan 02, 2006".
const newsDateFormat = "Jan 02, 2006"

// Sortable format for the resource refresh date.
const resourceDateFormat = "2006-01-02"

// newsService is the concrete implementation of NewsService
type newsService struct {
	repo repository.NewsRepository
	log  zerolog.Logger
}

func newNewsService(repo repository.NewsRepository, log zerolog.Logger) *newsService {
	return &newsService{
		repo: repo,
		log:  log.With().Str("service", "news").Logger(),
	}
}

func (s *newsService) List(ctx context.Context) ([]*models.NewsPost, error) {
	return s.repo.List(ctx)
}

func (s *newsService) Get(ctx context.Context, id int64) (*models.NewsPost, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stamps the post with the current date. The stamp is permanent:
// Update never rewrites it.
func (s *newsService) Create(ctx context.Context, title, content string) (*models.NewsPost, error) {
	post := &models.NewsPost{
		Title:   title,
		Content: content,
		Date:    now().Format(newsDateFormat),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	s.log.Info().Int64("id", post.ID).Str("title", title).Msg("News post created")
	return post, nil
}

func (s *newsService) Update(ctx context.Context, id int64, title, content string) (bool, error) {
	post := &models.NewsPost{Title: title, Content: content}
	return s.repo.Update(ctx, id, post)
}

// Delete is idempotent from the caller's perspective: a missing id is not
// an error, only a data-store failure is.
func (s *newsService) Delete(ctx context.Context, id int64) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		s.log.Debug().Int64("id", id).Msg("Delete of missing news post ignored")
	}
	return nil
}

// faqService is the concrete implementation of FaqService
type faqService struct {
	repo repository.FaqRepository
	log  zerolog.Logger
}

func newFaqService(repo repository.FaqRepository, log zerolog.Logger) *faqService {
	return &faqService{
		repo: repo,
		log:  log.With().Str("service", "faq").Logger(),
	}
}

func (s *faqService) List(ctx context.Context) ([]*models.FaqEntry, error) {
	return s.repo.List(ctx)
}

func (s *faqService) Get(ctx context.Context, id int64) (*models.FaqEntry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *faqService) Create(ctx context.Context, question, answer string) (*models.FaqEntry, error) {
	entry := &models.FaqEntry{Question: question, Answer: answer}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	s.log.Info().Int64("id", entry.ID).Msg("FAQ entry created")
	return entry, nil
}

func (s *faqService) Update(ctx context.Context, id int64, question, answer string) (bool, error) {
	entry := &models.FaqEntry{Question: question, Answer: answer}
	return s.repo.Update(ctx, id, entry)
}

func (s *faqService) Delete(ctx context.Context, id int64) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		s.log.Debug().Int64("id", id).Msg("Delete of missing FAQ entry ignored")
	}
	return nil
}

// resourceService is the concrete implementation of ResourceService
type resourceService struct {
	repo repository.ResourceRepository
	log  zerolog.Logger
}

func newResourceService(repo repository.ResourceRepository, log zerolog.Logger) *resourceService {
	return &resourceService{
		repo: repo,
		log:  log.With().Str("service", "resource").Logger(),
	}
}

func (s *resourceService) List(ctx context.Context) ([]*models.Resource, error) {
	return s.repo.List(ctx)
}

func (s *resourceService) Get(ctx context.Context, id int64) (*models.Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *resourceService) Create(ctx context.Context, in ResourceInput) (*models.Resource, error) {
	res := resourceFromInput(in)
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	s.log.Info().Int64("id", res.ID).Str("title", in.Title).Msg("Resource created")
	return res, nil
}

// Update refreshes updated_at alongside the admin-supplied fields.
func (s *resourceService) Update(ctx context.Context, id int64, in ResourceInput) (bool, error) {
	return s.repo.Update(ctx, id, resourceFromInput(in))
}

func (s *resourceService) Delete(ctx context.Context, id int64) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		s.log.Debug().Int64("id", id).Msg("Delete of missing resource ignored")
	}
	return nil
}

// resourceFromInput maps admin input onto a row, stamping updated_at with
// the current date.
func resourceFromInput(in ResourceInput) *models.Resource {
	updatedAt := now().Format(resourceDateFormat)
	return &models.Resource{
		Title:        in.Title,
		ResourceType: in.ResourceType,
		URL:          in.URL,
		Description:  &in.Description,
		Category:     &in.Category,
		UpdatedAt:    &updatedAt,
	}
}
