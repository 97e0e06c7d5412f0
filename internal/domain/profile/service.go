package profile

import (
	"context"
	"fmt"
	"strings"
)

// Service provides business logic for the profile domain.
type Service struct {
	repo Repository
}

// NewService creates a new profile domain service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SaveProfile creates or replaces the profile for a user.
func (s *Service) SaveProfile(ctx context.Context, p *Profile) error {
	if p.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("email is invalid")
	}
	if p.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if p.Age < 0 || p.Age > 150 {
		return fmt.Errorf("age is out of range")
	}
	return s.repo.Upsert(ctx, p)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}
