package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// QueryKey returns a stable cache key for a query string: the first 16 hex
// characters of the SHA-256 digest of the trimmed, lowercased input. Case
// and surrounding whitespace therefore do not fragment the cache.
func QueryKey(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:16]
}
