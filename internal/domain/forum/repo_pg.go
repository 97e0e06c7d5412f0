package forum

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

type forumRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &forumRepoPG{pool: pool}
}

func (r *forumRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const postCols = `id, user_id, title, content, author, is_approved, created_at`

func scanPost(row pgx.Row) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.Author, &p.IsApproved, &p.Timestamp)
	return &p, err
}

func (r *forumRepoPG) Create(ctx context.Context, p *Post) error {
	p.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO forum_post (id, user_id, title, content, author, is_approved)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		p.ID, p.UserID, p.Title, p.Content, p.Author, p.IsApproved).Scan(&p.Timestamp)
}

func (r *forumRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	return scanPost(r.conn(ctx).QueryRow(ctx,
		`SELECT `+postCols+` FROM forum_post WHERE id = $1`, id))
}

func (r *forumRepoPG) ListApproved(ctx context.Context, limit, offset int) ([]*Post, int, error) {
	return r.list(ctx, true, limit, offset)
}

func (r *forumRepoPG) ListPending(ctx context.Context, limit, offset int) ([]*Post, int, error) {
	return r.list(ctx, false, limit, offset)
}

func (r *forumRepoPG) list(ctx context.Context, approved bool, limit, offset int) ([]*Post, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM forum_post WHERE is_approved = $1`, approved).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+postCols+` FROM forum_post
		WHERE is_approved = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		approved, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (r *forumRepoPG) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE forum_post SET is_approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
