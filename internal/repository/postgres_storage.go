package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/luxe-storefront/internal/port"
)

const (
	selectValueSQL    = `SELECT value FROM storage_entries WHERE key = $1`
	selectRevisionSQL = `SELECT revision FROM storage_entries WHERE key = $1 FOR UPDATE`
	upsertSQL         = `
INSERT INTO storage_entries (key, value, revision, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, revision = EXCLUDED.revision, updated_at = NOW()`
	deleteSQL = `DELETE FROM storage_entries WHERE key = $1`
)

// PostgresStorage keeps snapshots in the storage_entries table. Every Save
// bumps the row's revision.
type PostgresStorage struct {
	q    querier
	pool *pgxpool.Pool
}

var _ port.SnapshotStorage = (*PostgresStorage)(nil)

func NewPostgres(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{
		q:    pool,
		pool: pool,
	}
}

func NewPostgresWithTx(tx pgx.Tx) *PostgresStorage {
	return &PostgresStorage{
		q:    tx,
		pool: nil, // use provided transaction instead
	}
}

func (s *PostgresStorage) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	var value []byte
	err := s.q.QueryRow(ctx, selectValueSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("q.QueryRow: %w", err)
	}

	return value, nil
}

func (s *PostgresStorage) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.SaveRevision(ctx, key, value)
	return err
}

// SaveRevision stores value under key and returns the new revision.
func (s *PostgresStorage) SaveRevision(ctx context.Context, key string, value []byte) (int64, error) {
	if key == "" {
		return 0, fmt.Errorf("key is empty")
	}
	if value == nil {
		value = []byte{}
	}

	return withTx(ctx, s.pool, s.q, func(q querier) (int64, error) {
		var revision int64
		err := q.QueryRow(ctx, selectRevisionSQL, key).Scan(&revision)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("q.QueryRow: %w", err)
		}

		revision++

		if _, err := q.Exec(ctx, upsertSQL, key, value, revision); err != nil {
			return 0, fmt.Errorf("q.Exec: %w", err)
		}

		return revision, nil
	})
}

func (s *PostgresStorage) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("key is empty")
	}

	tag, err := s.q.Exec(ctx, deleteSQL, key)
	if err != nil {
		return false, fmt.Errorf("q.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
