// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront-be/internal/apperrors"
)

// DefaultCost is the bcrypt log-rounds used when no cost is configured.
const DefaultCost = 10

// Hasher turns plaintext passwords into one-way salted digests.
type Hasher interface {
	// Hash generates a salted digest of the plaintext.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed digest
	// never matches.
	Verify(plaintext, digest string) bool
	// DummyHash returns a valid digest that matches no real password.
	DummyHash() string
}

type bcryptHasher struct {
	cost  int
	dummy string
}

// NewBcryptHasher creates a hasher with the given cost. Costs outside the
// range bcrypt accepts fall back to DefaultCost.
func NewBcryptHasher(cost int) (Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	// Unknown-email logins are checked against this digest so they cost the
	// same as a wrong password.
	dummy, err := bcrypt.GenerateFromPassword([]byte("storefront-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &bcryptHasher{cost: cost, dummy: string(dummy)}, nil
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

func (h *bcryptHasher) DummyHash() string {
	return h.dummy
}
