package feedback

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists feedback entries.
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	ListFeatured(ctx context.Context, limit, offset int) ([]*Feedback, int, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
}
