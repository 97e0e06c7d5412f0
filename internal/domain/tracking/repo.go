package tracking

import (
	"context"
	"time"
)

// Repository persists tracking records.
type Repository interface {
	CreateSubmission(ctx context.Context, s *TestSubmission) error
	ListSubmissionsByUser(ctx context.Context, userID string, onDate *time.Time) ([]*TestSubmission, error)
	CountSubmissionsByUser(ctx context.Context, userID string) (int, error)

	CreateMoodResult(ctx context.Context, m *MoodGrooveResult) error
	ListMoodResultsByEmail(ctx context.Context, email string, limit, offset int) ([]*MoodGrooveResult, int, error)
	ListMoodResultsByUser(ctx context.Context, userID string) ([]*MoodGrooveResult, error)

	CreateFacialSession(ctx context.Context, f *FacialAnalysisSession) error
	ListFacialSessionsByEmail(ctx context.Context, email string, limit, offset int) ([]*FacialAnalysisSession, int, error)

	CreateChatLog(ctx context.Context, l *ChatLog) error
	ListChatLogsByUser(ctx context.Context, userID string, limit, offset int) ([]*ChatLog, int, error)

	CreateBreathingLog(ctx context.Context, b *BreathingExerciseLog) error
	ListBreathingLogsByUser(ctx context.Context, userID string) ([]*BreathingExerciseLog, error)

	CreateInteraction(ctx context.Context, i *UserInteraction) error
}
