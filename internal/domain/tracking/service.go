package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calmnest/calmnest/internal/domain/assessment"
	"github.com/calmnest/calmnest/internal/platform/db"
)

// Sender values accepted on a chat log.
const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// Service provides business logic for the tracking domain.
type Service struct {
	repo Repository
	pool *pgxpool.Pool
}

// NewService creates a new tracking domain service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceWithPool creates a service that runs multi-step writes inside a
// database transaction.
func NewServiceWithPool(repo Repository, pool *pgxpool.Pool) *Service {
	return &Service{repo: repo, pool: pool}
}

// RecordSubmission validates a reported assessment result against the
// scoring tables before persisting it. The severity must be exactly what the
// instrument assigns to the score; a client cannot store a mismatched pair.
func (s *Service) RecordSubmission(ctx context.Context, sub *TestSubmission) error {
	if sub.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if _, err := assessment.InstrumentByCode(sub.TestType); err != nil {
		return err
	}
	severity, err := assessment.ClassifySeverity(sub.TestType, sub.Score)
	if err != nil {
		return err
	}
	if sub.Severity != "" && sub.Severity != severity {
		return fmt.Errorf("severity %q does not match score %d (expected %q)", sub.Severity, sub.Score, severity)
	}
	sub.Severity = severity

	if s.pool == nil {
		return s.storeSubmission(ctx, sub)
	}

	// The submission and its engagement event land together or not at all.
	tx, txCtx, err := db.WithPoolTx(ctx, s.pool)
	if err != nil {
		return err
	}
	if err := s.storeSubmission(txCtx, sub); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// storeSubmission writes the submission and records the matching
// engagement event.
func (s *Service) storeSubmission(ctx context.Context, sub *TestSubmission) error {
	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return err
	}
	details, err := json.Marshal(map[string]string{
		"test_type": sub.TestType,
		"severity":  sub.Severity,
	})
	if err != nil {
		return err
	}
	return s.repo.CreateInteraction(ctx, &UserInteraction{
		UserID:          sub.UserID,
		InteractionType: "test_submitted",
		Details:         details,
	})
}

func (s *Service) ListSubmissions(ctx context.Context, userID string, onDate *time.Time) ([]*TestSubmission, error) {
	return s.repo.ListSubmissionsByUser(ctx, userID, onDate)
}

// RecordMoodResult persists a saved mood estimate.
func (s *Service) RecordMoodResult(ctx context.Context, m *MoodGrooveResult) error {
	if m.UserID == "" && m.UserEmail == "" {
		return fmt.Errorf("user_id or user_email is required")
	}
	if m.DominantMood == "" {
		return fmt.Errorf("dominant_mood is required")
	}
	return s.repo.CreateMoodResult(ctx, m)
}

func (s *Service) ListMoodResults(ctx context.Context, email string, limit, offset int) ([]*MoodGrooveResult, int, error) {
	if email == "" {
		return nil, 0, fmt.Errorf("email is required")
	}
	return s.repo.ListMoodResultsByEmail(ctx, email, limit, offset)
}

// RecordFacialSession persists a completed camera session summary.
func (s *Service) RecordFacialSession(ctx context.Context, f *FacialAnalysisSession) error {
	if f.UserEmail == "" {
		return fmt.Errorf("user_email is required")
	}
	if f.SessionStart.IsZero() {
		return fmt.Errorf("session_start is required")
	}
	if f.SessionEnd != nil && f.SessionEnd.Before(f.SessionStart) {
		return fmt.Errorf("session_end precedes session_start")
	}
	if f.TotalDetections < 0 {
		return fmt.Errorf("total_detections cannot be negative")
	}
	return s.repo.CreateFacialSession(ctx, f)
}

func (s *Service) ListFacialSessions(ctx context.Context, email string, limit, offset int) ([]*FacialAnalysisSession, int, error) {
	return s.repo.ListFacialSessionsByEmail(ctx, email, limit, offset)
}

// RecordChatLog persists one side of a support-chat exchange.
func (s *Service) RecordChatLog(ctx context.Context, l *ChatLog) error {
	if l.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if l.Message == "" {
		return fmt.Errorf("message is required")
	}
	if l.Sender != ChatSenderUser && l.Sender != ChatSenderBot {
		return fmt.Errorf("sender must be %q or %q", ChatSenderUser, ChatSenderBot)
	}
	return s.repo.CreateChatLog(ctx, l)
}

func (s *Service) ListChatLogs(ctx context.Context, userID string, limit, offset int) ([]*ChatLog, int, error) {
	if userID == "" {
		return nil, 0, fmt.Errorf("user_id is required")
	}
	return s.repo.ListChatLogsByUser(ctx, userID, limit, offset)
}

// RecordBreathingLog persists a finished breathing exercise.
func (s *Service) RecordBreathingLog(ctx context.Context, b *BreathingExerciseLog) error {
	if b.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if b.ExerciseName == "" {
		return fmt.Errorf("exercise_name is required")
	}
	if b.DurationSeconds <= 0 {
		return fmt.Errorf("duration_seconds must be positive")
	}
	return s.repo.CreateBreathingLog(ctx, b)
}

// RecordInteraction persists an engagement event.
func (s *Service) RecordInteraction(ctx context.Context, i *UserInteraction) error {
	if i.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if i.InteractionType == "" {
		return fmt.Errorf("interaction_type is required")
	}
	return s.repo.CreateInteraction(ctx, i)
}

// Dashboard assembles a user's recent activity. The optional date filters
// submissions to a single calendar day.
func (s *Service) Dashboard(ctx context.Context, userID string, onDate *time.Time) (*Dashboard, error) {
	submissions, err := s.repo.ListSubmissionsByUser(ctx, userID, onDate)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	moods, err := s.repo.ListMoodResultsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list mood results: %w", err)
	}
	breathing, err := s.repo.ListBreathingLogsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list breathing logs: %w", err)
	}
	count, err := s.repo.CountSubmissionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}

	return &Dashboard{
		Submissions:   submissions,
		MoodResults:   moods,
		BreathingLogs: breathing,
		TestCount:     count,
	}, nil
}
