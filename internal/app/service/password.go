package service

import (
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
)

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash.
	Compare(hash, password string) bool
}

// bcryptHasher implements PasswordHasher with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher creates a bcrypt-backed PasswordHasher.
// A cost of 0 selects the bcrypt default.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domainerror.ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
