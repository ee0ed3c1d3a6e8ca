package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		namespace  TEXT PRIMARY KEY,
		blob       BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// PostgresKV stores one row per namespace.
type PostgresKV struct {
	db *pgxpool.Pool
}

// OpenPostgres connects to databaseURL and makes sure the table exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresKV, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("storage: connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: ping postgres: %w", err)
	}
	kv := NewPostgresKV(pool)
	if err := kv.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return kv, nil
}

func NewPostgresKV(db *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{db: db}
}

// Migrate creates the backing table when missing.
func (p *PostgresKV) Migrate(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, createKVTable); err != nil {
		return fmt.Errorf("storage: create kv table: %w", err)
	}
	return nil
}

func (p *PostgresKV) Get(ctx context.Context, namespace string) ([]byte, error) {
	var blob []byte
	err := p.db.QueryRow(ctx, `SELECT blob FROM kv_store WHERE namespace = $1`, namespace).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get %q: %w", namespace, err)
	}
	return blob, nil
}

func (p *PostgresKV) Set(ctx context.Context, namespace string, blob []byte) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO kv_store (namespace, blob, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (namespace) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()
	`, namespace, blob)
	if err != nil {
		return fmt.Errorf("storage: set %q: %w", namespace, err)
	}
	return nil
}

func (p *PostgresKV) Close() error {
	p.db.Close()
	return nil
}
