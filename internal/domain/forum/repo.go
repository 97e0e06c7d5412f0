package forum

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists forum posts.
type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	ListApproved(ctx context.Context, limit, offset int) ([]*Post, int, error)
	ListPending(ctx context.Context, limit, offset int) ([]*Post, int, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}
