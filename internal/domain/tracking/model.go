package tracking

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TestSubmission is a server-side record of one completed assessment,
// reported by a signed-in client.
type TestSubmission struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"user_id"`
	TestType  string          `json:"test_type"`
	Score     int             `json:"score"`
	Severity  string          `json:"severity"`
	Answers   json.RawMessage `json:"answers,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// MoodGrooveResult is one saved mood estimate from the facial analysis
// feature.
type MoodGrooveResult struct {
	ID              uuid.UUID       `json:"id"`
	UserID          string          `json:"user_id"`
	UserEmail       string          `json:"user_email"`
	DominantMood    string          `json:"dominant_mood"`
	Confidence      float64         `json:"confidence"`
	DepressionScore float64         `json:"depression_score"`
	AnxietyScore    float64         `json:"anxiety_score"`
	Expressions     json.RawMessage `json:"expressions,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

// FacialAnalysisSession summarizes a full camera session: aggregate scores
// over every detection between start and end.
type FacialAnalysisSession struct {
	ID               uuid.UUID       `json:"id"`
	UserEmail        string          `json:"user_email"`
	SessionStart     time.Time       `json:"session_start"`
	SessionEnd       *time.Time      `json:"session_end,omitempty"`
	TotalDetections  int             `json:"total_detections"`
	DominantMood     string          `json:"dominant_mood"`
	AvgConfidence    float64         `json:"avg_confidence"`
	AvgDepression    float64         `json:"avg_depression"`
	AvgAnxiety       float64         `json:"avg_anxiety"`
	MoodDistribution json.RawMessage `json:"mood_distribution,omitempty"`
	RawData          json.RawMessage `json:"raw_data,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ChatLog is one line of the support-chat conversation, from either the
// user or the bot.
type ChatLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// BreathingExerciseLog records one finished breathing exercise.
type BreathingExerciseLog struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	ExerciseName    string    `json:"exercise_name"`
	DurationSeconds int       `json:"duration_seconds"`
	Timestamp       time.Time `json:"timestamp"`
}

// UserInteraction is a lightweight engagement event (page visited, feature
// used) for the dashboard.
type UserInteraction struct {
	ID              uuid.UUID       `json:"id"`
	UserID          string          `json:"user_id"`
	InteractionType string          `json:"interaction_type"`
	Details         json.RawMessage `json:"details,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

// Dashboard bundles a user's activity for the dashboard endpoint.
type Dashboard struct {
	Submissions   []*TestSubmission       `json:"submissions"`
	MoodResults   []*MoodGrooveResult     `json:"mood_results"`
	BreathingLogs []*BreathingExerciseLog `json:"breathing_logs"`
	TestCount     int                     `json:"test_count"`
}
