// Package idgen generates flashcard identifiers.
//
// Both schemes combine a time component with a random component, so ids
// are unique in practice but not cryptographically guaranteed to be.
package idgen

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Supported id schemes.
const (
	SchemeNanoID = "nanoid"
	SchemeUUID   = "uuid"
)

const (
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomLength   = 11
)

// Generator produces a new identifier on every call.
type Generator interface {
	NewID() (string, error)
}

// New returns the generator for scheme.
func New(scheme string) (Generator, error) {
	switch scheme {
	case "", SchemeNanoID:
		return NewNanoID(time.Now), nil
	case SchemeUUID:
		return UUID{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme: %s", scheme)
	}
}

// NanoID builds ids as base36(unix millis) followed by random base36
// characters.
type NanoID struct {
	now func() time.Time
}

// NewNanoID creates a NanoID generator with the given time source.
func NewNanoID(now func() time.Time) *NanoID {
	return &NanoID{now: now}
}

// NewID returns a fresh id, e.g. "m1x2k3l4" + "a9z8y7x6w5v".
func (g *NanoID) NewID() (string, error) {
	suffix, err := gonanoid.Generate(base36Alphabet, randomLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate random id part: %w", err)
	}
	return strconv.FormatInt(g.now().UnixMilli(), 36) + suffix, nil
}

// UUID builds time-ordered UUIDv7 ids.
type UUID struct{}

// NewID returns a fresh UUIDv7 string.
func (UUID) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return id.String(), nil
}
