package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/registration/pkg/registration"
)

// UserRepository implements registration.Storage backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewUserRepository(ctx context.Context, pool *pgxpool.Pool) (*UserRepository, error) {
	repo := &UserRepository{pool: pool, now: time.Now}
	if err := repo.ensureTable(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureTable(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS registered_users (
			login TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			age INTEGER,
			registered_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

// Add upserts user; an existing row with the same login is replaced.
func (r *UserRepository) Add(ctx context.Context, user registration.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO registered_users (login, password, age, registered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (login) DO UPDATE
		SET password = EXCLUDED.password, age = EXCLUDED.age, registered_at = EXCLUDED.registered_at
	`, user.Login, user.Password, user.Age, r.now().UTC())
	return err
}

func (r *UserRepository) Get(ctx context.Context, login string) (registration.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT login, password, age
		FROM registered_users WHERE login = $1
	`, login)
	var user registration.User
	if err := row.Scan(&user.Login, &user.Password, &user.Age); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return registration.User{}, registration.ErrNotFound
		}
		return registration.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM registered_users`)
	return err
}
