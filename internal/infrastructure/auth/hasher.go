package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"campus/internal/shared/config"
)

// ErrPasswordMismatch hides whether the password or the stored hash was at fault.
var ErrPasswordMismatch = errors.New("password verification failed")

// BcryptPasswordHasher hashes account passwords at the configured bcrypt cost.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher reads the cost from auth.password. Costs outside
// the bcrypt range fall back to bcrypt.DefaultCost.
func NewBcryptPasswordHasher(cfg config.PasswordConfig) *BcryptPasswordHasher {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Cost() int {
	return h.cost
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// NeedsRehash reports whether hash was produced at a cost other than the
// configured one, or is not a bcrypt hash at all.
func (h *BcryptPasswordHasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost != h.cost
}
