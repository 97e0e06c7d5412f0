package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service provides business logic for the feedback domain.
type Service struct {
	repo Repository
}

// NewService creates a new feedback domain service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SubmitFeedback stores a new entry. New feedback is featured immediately;
// moderators can pull an entry from the listing later.
func (s *Service) SubmitFeedback(ctx context.Context, f *Feedback) error {
	if f.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if f.Text == "" {
		return fmt.Errorf("feedback_text is required")
	}
	if f.Rating != nil && (*f.Rating < 1 || *f.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	f.IsFeatured = true
	return s.repo.Create(ctx, f)
}

// ListFeatured returns featured feedback, newest first.
func (s *Service) ListFeatured(ctx context.Context, limit, offset int) ([]*Feedback, int, error) {
	return s.repo.ListFeatured(ctx, limit, offset)
}

// FeatureFeedback puts an entry on the public listing.
func (s *Service) FeatureFeedback(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetFeatured(ctx, id, true)
}
