package data

import "errors"

var (
	// ErrCollectionUnreadable is returned by mutating operations when the
	// stored collection exists but cannot be read or parsed. Записывать
	// поверх нечитаемых данных нельзя: это стерло бы их без возможности
	// восстановления.
	ErrCollectionUnreadable = errors.New("flashcard collection is unreadable")

	// ErrIDGeneration is returned when no unused id could be generated
	ErrIDGeneration = errors.New("failed to generate unique flashcard id")
)
