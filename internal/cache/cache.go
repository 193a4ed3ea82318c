package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized analysis results keyed by document hash
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the full document text. Identical documents
// always hit the same entry regardless of where they were loaded from.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "legalease:v1:" + hex.EncodeToString(hash[:])
}
