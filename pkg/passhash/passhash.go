// Package passhash provides the password digest scheme used by the user
// store: a single round of SHA-256, hex encoded. There is no per-user salt
// and no work factor; the stored digest format predates this codebase and
// every existing users row depends on it staying byte-for-byte stable.
package passhash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hash returns the hex-encoded SHA-256 digest of secret. Deterministic:
// the same secret always yields the same 64-character digest.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether candidate hashes to digest.
func Verify(digest, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(Hash(candidate))) == 1
}
