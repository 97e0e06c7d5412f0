package profile

import "context"

// Repository persists user profiles.
type Repository interface {
	Upsert(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
}
