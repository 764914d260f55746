// Package cryptox implements password hashing for CoffeeTime accounts.
//
// Three schemes are supported. argon2id is the default; bcrypt is available
// for interoperability; sha256 is the unsalted hex digest written by the
// first releases of the application and is kept so that those databases keep
// working. Verification always detects the scheme from the stored encoding,
// independent of the scheme selected for new hashes.
package cryptox

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme names a password hashing scheme.
type Scheme string

const (
	SchemeArgon2id Scheme = "argon2id"
	SchemeBcrypt   Scheme = "bcrypt"
	SchemeSHA256   Scheme = "sha256"
	SchemeUnknown  Scheme = ""
)

var ErrUnknownScheme = errors.New("unknown password hash scheme")

// PasswordHasher hashes new passwords and verifies stored encodings.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password []byte) (string, error)
	// Verify reports whether password matches encoded. A malformed encoding
	// is an error, a wrong password is not.
	Verify(encoded string, password []byte) (bool, error)
	// NeedsRehash reports whether encoded should be replaced by a fresh Hash.
	NeedsRehash(encoded string) bool
}

type schemeHasher interface {
	hash(password []byte) (string, error)
	verify(encoded string, password []byte) (bool, error)
}

// Hasher hashes with one configured scheme and verifies any known scheme.
type Hasher struct {
	scheme  Scheme
	schemes map[Scheme]schemeHasher
}

// NewHasher returns a Hasher producing hashes with scheme. Argon2 parameters
// default to DefaultArgon2Params.
func NewHasher(scheme string) (*Hasher, error) {
	return NewHasherWithParams(scheme, DefaultArgon2Params)
}

// NewHasherWithParams is NewHasher with explicit argon2id cost parameters.
func NewHasherWithParams(scheme string, params Argon2Params) (*Hasher, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(scheme)))
	h := &Hasher{
		scheme: s,
		schemes: map[Scheme]schemeHasher{
			SchemeArgon2id: argon2Hasher{params: params},
			SchemeBcrypt:   bcryptHasher{},
			SchemeSHA256:   sha256Hasher{},
		},
	}
	if _, ok := h.schemes[s]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	return h, nil
}

// Scheme returns the scheme used for new hashes.
func (h *Hasher) Scheme() Scheme {
	return h.scheme
}

func (h *Hasher) Hash(password []byte) (string, error) {
	return h.schemes[h.scheme].hash(password)
}

func (h *Hasher) Verify(encoded string, password []byte) (bool, error) {
	sh, ok := h.schemes[SchemeOf(encoded)]
	if !ok {
		return false, ErrUnknownScheme
	}
	return sh.verify(encoded, password)
}

// NeedsRehash is true only for legacy sha256 digests while a salted scheme is
// configured. Hashes are never downgraded.
func (h *Hasher) NeedsRehash(encoded string) bool {
	return h.scheme != SchemeSHA256 && SchemeOf(encoded) == SchemeSHA256
}

// SchemeOf detects the scheme of an encoded hash.
func SchemeOf(encoded string) Scheme {
	switch {
	case strings.HasPrefix(encoded, argon2Prefix):
		return SchemeArgon2id
	case strings.HasPrefix(encoded, "$2a$"), strings.HasPrefix(encoded, "$2b$"), strings.HasPrefix(encoded, "$2y$"):
		return SchemeBcrypt
	case isSHA256Hex(encoded):
		return SchemeSHA256
	default:
		return SchemeUnknown
	}
}
