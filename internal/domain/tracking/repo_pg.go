package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calmnest/calmnest/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type trackingRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &trackingRepoPG{pool: pool}
}

func (r *trackingRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

// -- Test submissions --

const submissionCols = `id, user_id, test_type, score, severity, answers, created_at`

func scanSubmission(row pgx.Row) (*TestSubmission, error) {
	var s TestSubmission
	err := row.Scan(&s.ID, &s.UserID, &s.TestType, &s.Score, &s.Severity, &s.Answers, &s.Timestamp)
	return &s, err
}

func (r *trackingRepoPG) CreateSubmission(ctx context.Context, s *TestSubmission) error {
	s.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO test_submission (id, user_id, test_type, score, severity, answers)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		s.ID, s.UserID, s.TestType, s.Score, s.Severity, s.Answers).Scan(&s.Timestamp)
}

func (r *trackingRepoPG) ListSubmissionsByUser(ctx context.Context, userID string, onDate *time.Time) ([]*TestSubmission, error) {
	query := `SELECT ` + submissionCols + ` FROM test_submission WHERE user_id = $1`
	args := []interface{}{userID}
	if onDate != nil {
		query += ` AND created_at::date = $2::date`
		args = append(args, *onDate)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*TestSubmission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *trackingRepoPG) CountSubmissionsByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM test_submission WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// -- Mood groove results --

const moodCols = `id, user_id, user_email, dominant_mood, confidence, depression_score, anxiety_score, expressions, created_at`

func scanMoodResult(row pgx.Row) (*MoodGrooveResult, error) {
	var m MoodGrooveResult
	err := row.Scan(&m.ID, &m.UserID, &m.UserEmail, &m.DominantMood, &m.Confidence,
		&m.DepressionScore, &m.AnxietyScore, &m.Expressions, &m.Timestamp)
	return &m, err
}

func (r *trackingRepoPG) CreateMoodResult(ctx context.Context, m *MoodGrooveResult) error {
	m.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO mood_groove_result (id, user_id, user_email, dominant_mood, confidence,
			depression_score, anxiety_score, expressions)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		m.ID, m.UserID, m.UserEmail, m.DominantMood, m.Confidence,
		m.DepressionScore, m.AnxietyScore, m.Expressions).Scan(&m.Timestamp)
}

func (r *trackingRepoPG) ListMoodResultsByEmail(ctx context.Context, email string, limit, offset int) ([]*MoodGrooveResult, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM mood_groove_result WHERE user_email = $1`, email).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+moodCols+` FROM mood_groove_result
		WHERE user_email = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		email, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*MoodGrooveResult
	for rows.Next() {
		m, err := scanMoodResult(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *trackingRepoPG) ListMoodResultsByUser(ctx context.Context, userID string) ([]*MoodGrooveResult, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+moodCols+` FROM mood_groove_result
		WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MoodGrooveResult
	for rows.Next() {
		m, err := scanMoodResult(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// -- Facial analysis sessions --

const facialCols = `id, user_email, session_start, session_end, total_detections, dominant_mood,
	avg_confidence, avg_depression, avg_anxiety, mood_distribution, raw_data, created_at`

func scanFacialSession(row pgx.Row) (*FacialAnalysisSession, error) {
	var f FacialAnalysisSession
	err := row.Scan(&f.ID, &f.UserEmail, &f.SessionStart, &f.SessionEnd, &f.TotalDetections,
		&f.DominantMood, &f.AvgConfidence, &f.AvgDepression, &f.AvgAnxiety,
		&f.MoodDistribution, &f.RawData, &f.CreatedAt)
	return &f, err
}

func (r *trackingRepoPG) CreateFacialSession(ctx context.Context, f *FacialAnalysisSession) error {
	f.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO facial_analysis_session (id, user_email, session_start, session_end,
			total_detections, dominant_mood, avg_confidence, avg_depression, avg_anxiety,
			mood_distribution, raw_data)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING created_at`,
		f.ID, f.UserEmail, f.SessionStart, f.SessionEnd, f.TotalDetections, f.DominantMood,
		f.AvgConfidence, f.AvgDepression, f.AvgAnxiety, f.MoodDistribution, f.RawData).Scan(&f.CreatedAt)
}

func (r *trackingRepoPG) ListFacialSessionsByEmail(ctx context.Context, email string, limit, offset int) ([]*FacialAnalysisSession, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM facial_analysis_session WHERE user_email = $1`, email).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+facialCols+` FROM facial_analysis_session
		WHERE user_email = $1 ORDER BY session_start DESC LIMIT $2 OFFSET $3`,
		email, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*FacialAnalysisSession
	for rows.Next() {
		f, err := scanFacialSession(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, f)
	}
	return items, total, rows.Err()
}

// -- Chat logs --

func (r *trackingRepoPG) CreateChatLog(ctx context.Context, l *ChatLog) error {
	l.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO chat_log (id, user_id, message, sender)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		l.ID, l.UserID, l.Message, l.Sender).Scan(&l.Timestamp)
}

func (r *trackingRepoPG) ListChatLogsByUser(ctx context.Context, userID string, limit, offset int) ([]*ChatLog, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_log WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, user_id, message, sender, created_at
		FROM chat_log WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*ChatLog
	for rows.Next() {
		var l ChatLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Message, &l.Sender, &l.Timestamp); err != nil {
			return nil, 0, err
		}
		items = append(items, &l)
	}
	return items, total, rows.Err()
}

// -- Breathing exercise logs --

func (r *trackingRepoPG) CreateBreathingLog(ctx context.Context, b *BreathingExerciseLog) error {
	b.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO breathing_exercise_log (id, user_id, exercise_name, duration_seconds)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		b.ID, b.UserID, b.ExerciseName, b.DurationSeconds).Scan(&b.Timestamp)
}

func (r *trackingRepoPG) ListBreathingLogsByUser(ctx context.Context, userID string) ([]*BreathingExerciseLog, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, user_id, exercise_name, duration_seconds, created_at
		FROM breathing_exercise_log WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*BreathingExerciseLog
	for rows.Next() {
		var b BreathingExerciseLog
		if err := rows.Scan(&b.ID, &b.UserID, &b.ExerciseName, &b.DurationSeconds, &b.Timestamp); err != nil {
			return nil, err
		}
		items = append(items, &b)
	}
	return items, rows.Err()
}

// -- User interactions --

func (r *trackingRepoPG) CreateInteraction(ctx context.Context, i *UserInteraction) error {
	i.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO user_interaction (id, user_id, interaction_type, details)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		i.ID, i.UserID, i.InteractionType, i.Details).Scan(&i.Timestamp)
}
