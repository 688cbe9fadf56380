// Package hash provides password hashing and verification.
//
// New digests are bcrypt (salted, adaptive cost). Databases written by earlier
// releases stored a bare SHA-256 hex digest; Verify still accepts that format
// so existing accounts keep working, and NeedsRehash marks it for upgrade.
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the password does not match the
// stored digest.
var ErrMismatch = errors.New("password does not match stored digest")

// legacyDigestLen is the length of a SHA-256 hex digest.
const legacyDigestLen = 64

// Digest returns the legacy SHA-256 hex digest of a plaintext password.
// Deterministic and one-way. Kept for compatibility with stored digests;
// new code must hash through Bcrypt instead.
func Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Bcrypt hashes and verifies passwords with bcrypt, with a fallback
// verification path for legacy SHA-256 digests.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher with the default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// NewBcryptWithCost returns a Bcrypt hasher with an explicit cost.
// Tests use bcrypt.MinCost to keep hashing fast.
func NewBcryptWithCost(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

// Hash derives a bcrypt digest from a plaintext password.
func (b *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify checks a plaintext password against a stored digest, dispatching on
// the digest format. It returns ErrMismatch when the password is wrong.
func (b *Bcrypt) Verify(stored, password string) error {
	if isLegacyDigest(stored) {
		computed := Digest(password)
		if subtle.ConstantTimeCompare([]byte(stored), []byte(computed)) != 1 {
			return ErrMismatch
		}
		return nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}

// NeedsRehash reports whether a stored digest is in the legacy SHA-256 format
// and should be replaced after the next successful verification.
func (b *Bcrypt) NeedsRehash(stored string) bool {
	return isLegacyDigest(stored)
}

// isLegacyDigest reports whether the stored value looks like a SHA-256 hex
// digest rather than a bcrypt hash.
func isLegacyDigest(stored string) bool {
	if len(stored) != legacyDigestLen {
		return false
	}
	for _, c := range stored {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
