package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// sha256Hasher is the legacy scheme: lowercase hex of SHA-256 over the raw
// password bytes, no salt and no stretching.
type sha256Hasher struct{}

func LegacyDigest(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

func (sha256Hasher) hash(password []byte) (string, error) {
	return LegacyDigest(password), nil
}

func (sha256Hasher) verify(encoded string, password []byte) (bool, error) {
	candidate := LegacyDigest(password)
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(candidate)) == 1, nil
}

func isSHA256Hex(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
