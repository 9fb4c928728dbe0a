package password

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// IsHash reports whether stored looks like a bcrypt hash ($2a$, $2b$, $2y$).
func IsHash(stored string) bool {
	return len(stored) == 60 && strings.HasPrefix(stored, "$2")
}

// Verify accepts bcrypt hashes and, for rows imported from the old system, plaintext secrets.
func Verify(stored, password string) error {
	if stored == "" || password == "" {
		return ErrInvalidPassword
	}
	if IsHash(stored) {
		return ComparePassword(stored, password)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return ErrComparisonFailed
	}
	return nil
}
