package loader

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// CacheKey builds the cache key of file for env under scope:
// "<scope>.<env>.<hex(blake2b-256(file))>.cache".
func CacheKey(scope, env, file string) string {
	sum := blake2b.Sum256([]byte(file))
	return scope + "." + env + "." + hex.EncodeToString(sum[:]) + ".cache"
}
