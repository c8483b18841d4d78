package storage

import "errors"

// Common storage errors
var (
	// ErrItemNotFound indicates that no value is stored under the key
	ErrItemNotFound = errors.New("item not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
