package storage

import "context"

// Storage keys used by the application.
const (
	// KeyFlashcards holds the whole serialized flashcard collection
	KeyFlashcards = "flashcards"

	// KeyTheme holds the persisted UI theme ("light" or "dark")
	KeyTheme = "theme"
)

// KeyValueStorage defines a persistent key-value store where every
// value is an opaque blob replaced as a whole on write.
type KeyValueStorage interface {
	// GetItem returns the value stored under key
	// Returns ErrItemNotFound if nothing is stored
	GetItem(ctx context.Context, key string) ([]byte, error)

	// SetItem stores value under key, replacing any previous value
	SetItem(ctx context.Context, key string, value []byte) error

	// RemoveItem deletes key; a missing key is not an error
	RemoveItem(ctx context.Context, key string) error

	// Close releases the underlying resources
	Close() error
}
