package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type postgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgres builds backend on top of kv_entries table, see migrations
func NewPostgres(p *pgxpool.Pool) Backend {
	return &postgresBackend{pool: p}
}

func (b *postgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	q := "SELECT value FROM kv_entries WHERE key = $1"

	row := b.pool.QueryRow(ctx, q, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (b *postgresBackend) Set(ctx context.Context, key string, value []byte) error {
	q := `INSERT INTO kv_entries(key, value, updated_at) VALUES($1, $2, now())
          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := b.pool.Exec(ctx, q, key, value); err != nil {
		return err
	}
	return nil
}
