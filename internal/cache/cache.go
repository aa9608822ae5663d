// Package cache stores serialized evaluation results so re-evaluating an
// unchanged case is a lookup instead of a graph walk. Caching is an
// optimization only; verdict correctness never depends on it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache is a byte store with per-entry TTL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the identity parts of an evaluation: graph
// fingerprint, audience fingerprint, standard assignment fingerprint, and
// target. Any mutation of graph or audience changes the fingerprints and
// thereby invalidates prior entries.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return "carneades:v1:" + hex.EncodeToString(sum[:])
}
