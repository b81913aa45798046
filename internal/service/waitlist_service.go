package service

import (
	"context"

	"github.com/community-cms/internal/models"
	"github.com/community-cms/internal/repository"
	"github.com/rs/zerolog"
)

// waitlistService is the concrete implementation of WaitlistService
type waitlistService struct {
	repo repository.WaitlistRepository
	log  zerolog.Logger
}

func newWaitlistService(repo repository.WaitlistRepository, log zerolog.Logger) *waitlistService {
	return &waitlistService{
		repo: repo,
		log:  log.With().Str("service", "waitlist").Logger(),
	}
}

// Join appends a signup. Duplicates are allowed and email format is not
// checked beyond non-emptiness, which the validation layer enforces.
func (s *waitlistService) Join(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	entry, err := s.repo.Append(ctx, email)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("id", entry.ID).Msg("Waitlist signup recorded")
	return entry, nil
}

func (s *waitlistService) Entries(ctx context.Context) ([]*models.WaitlistEntry, error) {
	return s.repo.List(ctx)
}

// TotalMembers returns the running signup count shown on every public
// page. A data-layer failure degrades to 0 instead of propagating: public
// pages must never fail to render over this counter. That tradeoff is
// specific to this read path.
func (s *waitlistService) TotalMembers(ctx context.Context) int {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Member count unavailable, degrading to 0")
		return 0
	}
	return count
}
