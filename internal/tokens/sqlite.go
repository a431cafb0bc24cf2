package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mohammadmehrani/CAD/internal/dbx"
)

// SQLiteStore keeps the durable keys in a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already-opened and migrated database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM keystore WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get keystore[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return set(ctx, s.db, key, value)
}

// SetPair stores both tokens in one transaction so a crash between the
// two writes cannot leave a refresh token paired with a stale access token.
func (s *SQLiteStore) SetPair(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, KeyAccessToken, access); err != nil {
			return err
		}
		return set(ctx, tx, KeyRefreshToken, refresh)
	})
}

// Clear removes the token pair. The language preference survives logout.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM keystore WHERE key IN (?, ?)`, KeyAccessToken, KeyRefreshToken)
	if err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO keystore (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set keystore[%s]: %w", key, err)
	}
	return nil
}
