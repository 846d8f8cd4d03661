package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage persists session keys in a key/value table. Alternative
// backend for deployments that already run Postgres but no Redis.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage returns a Postgres-backed implementation. The
// dashboard_sessions table is created by the bundled migrations.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

func (p *PostgresStorage) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM dashboard_sessions WHERE key=$1`

	var value string
	if err := p.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (p *PostgresStorage) Set(ctx context.Context, key, value string) error {
	const query = `
        INSERT INTO dashboard_sessions (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`

	_, err := p.pool.Exec(ctx, query, key, value)
	return err
}

func (p *PostgresStorage) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM dashboard_sessions WHERE key=$1`

	_, err := p.pool.Exec(ctx, query, key)
	return err
}
