package profile

import (
	"context"

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

type profileRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &profileRepoPG{pool: pool}
}

func (r *profileRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *profileRepoPG) Upsert(ctx context.Context, p *Profile) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO profile (user_id, email, full_name, age, gender, updated_at)
		VALUES ($1,$2,$3,$4,$5, now())
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			updated_at = now()
		RETURNING updated_at`,
		p.UserID, p.Email, p.FullName, p.Age, p.Gender).Scan(&p.UpdatedAt)
}

func (r *profileRepoPG) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT user_id, email, full_name, age, gender, updated_at
		FROM profile WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.Email, &p.FullName, &p.Age, &p.Gender, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
