package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/community-cms/internal/mocks"
	"github.com/community-cms/internal/repository"
	"github.com/rs/zerolog"
)

// withFixedClock pins the package clock for the duration of a test.
func withFixedClock(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = prev })
}

func newTestServices(repos *repository.Repositories) *Services {
	return NewServices(repos, zerolog.Nop())
}

func TestNewsCreateStampsDate(t *testing.T) {
	withFixedClock(t, time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC))

	newsRepo := mocks.NewMockNewsRepository()
	svc := newNewsService(newsRepo, zerolog.Nop())

	post, err := svc.Create(context.Background(), "Launch", "We are live.")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if post.ID == 0 {
		t.Error("Expected an assigned id")
	}
	if post.Date != "Mar 05, 2024" {
		t.Errorf("Expected date 'Mar 05, 2024', got %q", post.Date)
	}

	stored, _ := newsRepo.GetByID(context.Background(), post.ID)
	if stored == nil || stored.Title != "Launch" || stored.Content != "We are live." {
		t.Errorf("Round trip mismatch: %+v", stored)
	}
}

func TestNewsUpdateLeavesDateUntouched(t *testing.T) {
	withFixedClock(t, time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC))

	newsRepo := mocks.NewMockNewsRepository()
	svc := newNewsService(newsRepo, zerolog.Nop())

	post, err := svc.Create(context.Background(), "Launch", "We are live.")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	withFixedClock(t, time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC))

	found, err := svc.Update(context.Background(), post.ID, "Launch (edited)", "Still live.")
	if err != nil || !found {
		t.Fatalf("Update failed: found=%v err=%v", found, err)
	}

	stored, _ := newsRepo.GetByID(context.Background(), post.ID)
	if stored.Title != "Launch (edited)" {
		t.Errorf("Expected updated title, got %q", stored.Title)
	}
	if stored.Date != "Mar 05, 2024" {
		t.Errorf("Date must not change on update, got %q", stored.Date)
	}
}

func TestNewsUpdateMissingID(t *testing.T) {
	svc := newNewsService(mocks.NewMockNewsRepository(), zerolog.Nop())

	found, err := svc.Update(context.Background(), 42, "Title", "Content")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if found {
		t.Error("Expected found=false for missing id")
	}
}

func TestNewsDeleteIsIdempotent(t *testing.T) {
	newsRepo := mocks.NewMockNewsRepository()
	svc := newNewsService(newsRepo, zerolog.Nop())

	post, _ := svc.Create(context.Background(), "Launch", "We are live.")

	if err := svc.Delete(context.Background(), post.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	stored, _ := newsRepo.GetByID(context.Background(), post.ID)
	if stored != nil {
		t.Error("Expected post to be gone after delete")
	}

	// Second delete of the same id is not an error
	if err := svc.Delete(context.Background(), post.ID); err != nil {
		t.Errorf("Delete of missing id returned error: %v", err)
	}
}

func TestResourceCreateAndUpdateRefreshUpdatedAt(t *testing.T) {
	withFixedClock(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))

	resourceRepo := mocks.NewMockResourceRepository()
	svc := newResourceService(resourceRepo, zerolog.Nop())

	in := ResourceInput{
		Title:        "Starter guide",
		ResourceType: "pdf",
		URL:          "https://example.com/guide.pdf",
		Description:  "Everything to get going",
		Category:     "onboarding",
	}
	res, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if res.UpdatedAt == nil || *res.UpdatedAt != "2024-01-10" {
		t.Fatalf("Expected updated_at 2024-01-10, got %v", res.UpdatedAt)
	}

	withFixedClock(t, time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))

	found, err := svc.Update(context.Background(), res.ID, in)
	if err != nil || !found {
		t.Fatalf("Update failed: found=%v err=%v", found, err)
	}

	stored, _ := resourceRepo.GetByID(context.Background(), res.ID)
	if stored.UpdatedAt == nil || *stored.UpdatedAt != "2024-06-02" {
		t.Errorf("Expected refreshed updated_at 2024-06-02, got %v", stored.UpdatedAt)
	}
	if *stored.UpdatedAt < "2024-01-10" {
		t.Error("Refreshed updated_at must not precede the previous value")
	}
}

func TestFaqRoundTrip(t *testing.T) {
	faqRepo := mocks.NewMockFaqRepository()
	svc := newFaqService(faqRepo, zerolog.Nop())

	entry, err := svc.Create(context.Background(), "How do I join?", "Use the signup form.")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, _ := svc.Get(context.Background(), entry.ID)
	if stored == nil || stored.Question != "How do I join?" || stored.Answer != "Use the signup form." {
		t.Errorf("Round trip mismatch: %+v", stored)
	}
}

func TestWaitlistJoinAllowsDuplicates(t *testing.T) {
	waitlistRepo := mocks.NewMockWaitlistRepository()
	svc := newWaitlistService(waitlistRepo, zerolog.Nop())
	ctx := context.Background()

	before := svc.TotalMembers(ctx)

	emails := []string{"a@example.com", "a@example.com", "b@example.com"}
	for _, email := range emails {
		if _, err := svc.Join(ctx, email); err != nil {
			t.Fatalf("Join failed: %v", err)
		}
	}

	if got := svc.TotalMembers(ctx); got != before+len(emails) {
		t.Errorf("Expected count %d, got %d", before+len(emails), got)
	}
}

func TestTotalMembersDegradesToZero(t *testing.T) {
	waitlistRepo := mocks.NewMockWaitlistRepository()
	waitlistRepo.CountErr = errors.New("connection refused")
	svc := newWaitlistService(waitlistRepo, zerolog.Nop())

	if got := svc.TotalMembers(context.Background()); got != 0 {
		t.Errorf("Expected 0 on data-layer failure, got %d", got)
	}
}

func TestNewServicesWiresAllServices(t *testing.T) {
	repos := &repository.Repositories{
		News:     mocks.NewMockNewsRepository(),
		Faq:      mocks.NewMockFaqRepository(),
		Resource: mocks.NewMockResourceRepository(),
		Waitlist: mocks.NewMockWaitlistRepository(),
	}
	services := newTestServices(repos)

	if services.News == nil || services.Faq == nil || services.Resource == nil || services.Waitlist == nil {
		t.Error("Expected all services to be wired")
	}
}
