package forum

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const maxTitleLen = 200

// Service provides business logic for the forum domain.
type Service struct {
	repo Repository
}

// NewService creates a new forum domain service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreatePost publishes a new post. Posts go live immediately; moderation is
// after the fact.
func (s *Service) CreatePost(ctx context.Context, p *Post) error {
	if p.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(p.Title) > maxTitleLen {
		return fmt.Errorf("title exceeds %d characters", maxTitleLen)
	}
	if p.Content == "" {
		return fmt.Errorf("content is required")
	}
	if p.Author == "" {
		return fmt.Errorf("author is required")
	}
	p.IsApproved = true
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPost(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPosts returns approved posts, newest first.
func (s *Service) ListPosts(ctx context.Context, limit, offset int) ([]*Post, int, error) {
	return s.repo.ListApproved(ctx, limit, offset)
}

// ListPendingPosts returns posts held back from the public listing.
func (s *Service) ListPendingPosts(ctx context.Context, limit, offset int) ([]*Post, int, error) {
	return s.repo.ListPending(ctx, limit, offset)
}

// ApprovePost returns a moderated post to the public listing.
func (s *Service) ApprovePost(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetApproved(ctx, id, true)
}
