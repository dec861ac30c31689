// Package prefs persists small user preferences as expiring key/value
// strings. Game state never goes through here.
package prefs

import (
	"context"
	"errors"
	"time"
)

// Key under which the background-music preference is stored.
const KeyPlayMusic = "prefs:playMusic"

// DefaultTTL is how long a preference survives without being re-set.
const DefaultTTL = 30 * 24 * time.Hour

// ErrNotFound means the key is absent or its entry has expired.
var ErrNotFound = errors.New("prefs: not found")

// Store is a key/value string store with per-key expiry.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// GetBool reads a boolean preference, returning fallback when the key is
// missing, expired, or unreadable.
func GetBool(ctx context.Context, s Store, key string, fallback bool) bool {
	v, err := s.Get(ctx, key)
	if err != nil {
		return fallback
	}
	return v == "true"
}

// SetBool writes a boolean preference with the default TTL.
func SetBool(ctx context.Context, s Store, key string, value bool) error {
	v := "false"
	if value {
		v = "true"
	}
	return s.Set(ctx, key, v, DefaultTTL)
}
