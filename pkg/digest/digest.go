// Package digest provides the deterministic SHA-256 hex primitives used by
// the receipt chain and the Merkle engine. All digests are lowercase hex.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// HexLen is the length of a hex-encoded SHA-256 digest.
const HexLen = 64

// SHA256Hex computes the SHA-256 digest of input and returns it hex-encoded.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// SHA256HexConcat digests the concatenation of parts in order.
func SHA256HexConcat(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// IsHex reports whether s is a well-formed hex-encoded SHA-256 digest.
func IsHex(s string) bool {
	if len(s) != HexLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
