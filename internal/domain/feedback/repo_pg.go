package feedback

import (
	"context"

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

type feedbackRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &feedbackRepoPG{pool: pool}
}

func (r *feedbackRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *feedbackRepoPG) Create(ctx context.Context, f *Feedback) error {
	f.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO feedback (id, user_id, feedback_text, rating, is_featured)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		f.ID, f.UserID, f.Text, f.Rating, f.IsFeatured).Scan(&f.Timestamp)
}

func (r *feedbackRepoPG) ListFeatured(ctx context.Context, limit, offset int) ([]*Feedback, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM feedback WHERE is_featured`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, user_id, feedback_text, rating, is_featured, created_at
		FROM feedback WHERE is_featured
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Text, &f.Rating, &f.IsFeatured, &f.Timestamp); err != nil {
			return nil, 0, err
		}
		items = append(items, &f)
	}
	return items, total, rows.Err()
}

func (r *feedbackRepoPG) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE feedback SET is_featured = $2 WHERE id = $1`, id, featured)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
