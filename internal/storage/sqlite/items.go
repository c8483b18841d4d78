package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/flashkeeper/internal/storage"
)

// GetItem returns the value stored under key
func (s *Storage) GetItem(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRowContext(ctx, `SELECT value FROM items WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrItemNotFound
	}
	if err != nil {
		return nil, mapClosed(fmt.Errorf("failed to get item %q: %w", key, err))
	}

	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// SetItem stores value under key, replacing any previous value
func (s *Storage) SetItem(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return mapClosed(fmt.Errorf("failed to save item %q: %w", key, err))
	}
	return nil
}

// RemoveItem deletes key; a missing key is not an error
func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE key = ?`, key); err != nil {
		return mapClosed(fmt.Errorf("failed to delete item %q: %w", key, err))
	}
	return nil
}

// mapClosed переводит ошибку закрытого *sql.DB в storage.ErrStorageClosed
func mapClosed(err error) error {
	if err != nil && strings.Contains(err.Error(), "sql: database is closed") {
		return storage.ErrStorageClosed
	}
	return err
}
