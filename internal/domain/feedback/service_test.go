package feedback

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	entries map[uuid.UUID]*Feedback
}

func newMockRepo() *mockRepo {
	return &mockRepo{entries: make(map[uuid.UUID]*Feedback)}
}

func (m *mockRepo) Create(ctx context.Context, f *Feedback) error {
	f.ID = uuid.New()
	f.Timestamp = time.Now().UTC()
	m.entries[f.ID] = f
	return nil
}

func (m *mockRepo) ListFeatured(ctx context.Context, limit, offset int) ([]*Feedback, int, error) {
	var out []*Feedback
	for _, f := range m.entries {
		if f.IsFeatured {
			out = append(out, f)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	f, ok := m.entries[id]
	if !ok {
		return fmt.Errorf("not found")
	}
	f.IsFeatured = featured
	return nil
}

func intPtr(v int) *int { return &v }

func TestSubmitFeedback_FeaturedImmediately(t *testing.T) {
	svc := NewService(newMockRepo())

	f := &Feedback{UserID: "u1", Text: "Really helped me", Rating: intPtr(5)}
	if err := svc.SubmitFeedback(context.Background(), f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsFeatured {
		t.Error("expected new feedback to be featured")
	}
}

func TestSubmitFeedback_Validation(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	if err := svc.SubmitFeedback(ctx, &Feedback{Text: "hi"}); err == nil {
		t.Error("expected error for missing user_id")
	}
	if err := svc.SubmitFeedback(ctx, &Feedback{UserID: "u1"}); err == nil {
		t.Error("expected error for missing text")
	}
	if err := svc.SubmitFeedback(ctx, &Feedback{UserID: "u1", Text: "hi", Rating: intPtr(6)}); err == nil {
		t.Error("expected error for rating above 5")
	}
	if err := svc.SubmitFeedback(ctx, &Feedback{UserID: "u1", Text: "hi", Rating: intPtr(0)}); err == nil {
		t.Error("expected error for rating below 1")
	}
	// Rating is optional.
	if err := svc.SubmitFeedback(ctx, &Feedback{UserID: "u1", Text: "hi"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFeatureFeedback(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	f := &Feedback{UserID: "u1", Text: "ok"}
	svc.SubmitFeedback(ctx, f)
	repo.entries[f.ID].IsFeatured = false

	if err := svc.FeatureFeedback(ctx, f.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, total, _ := svc.ListFeatured(ctx, 20, 0)
	if total != 1 || len(items) != 1 {
		t.Errorf("expected 1 featured entry, got %d", total)
	}

	if err := svc.FeatureFeedback(ctx, uuid.New()); err == nil {
		t.Error("expected error for unknown feedback")
	}
}
