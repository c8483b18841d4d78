package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/flashkeeper/internal/storage"
)

// GetItem returns the value stored under key
func (s *Storage) GetItem(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrItemNotFound
		}

		// Значение валидно только внутри транзакции, копируем
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})

	if err != nil {
		return nil, mapClosed(err)
	}

	return value, nil
}

// SetItem stores value under key, replacing any previous value
func (s *Storage) SetItem(ctx context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save item %q: %w", key, err)
		}

		return nil
	})
	return mapClosed(err)
}

// RemoveItem deletes key; a missing key is not an error
func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketItems)
		if bucket == nil {
			return fmt.Errorf("items bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete item %q: %w", key, err)
		}

		return nil
	})
	return mapClosed(err)
}
