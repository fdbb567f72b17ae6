package password

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 12

// specialChars is the accepted special-character set for strength validation.
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// commonPrefixes are rejected as password prefixes regardless of the rest of
// the password (case-insensitive).
var commonPrefixes = []string{"password", "qwerty", "123456", "admin", "user", "test"}

var (
	ErrTooShort      = errors.New("password must be at least 8 characters long")
	ErrNoCaseMix     = errors.New("password must contain both lowercase and uppercase letters")
	ErrNoDigit       = errors.New("password must contain at least one digit")
	ErrNoSpecialChar = errors.New("password must contain at least one special character")
	ErrCommonPattern = errors.New("password matches a common pattern and is not allowed")
)

// ValidateStrength checks a password against the signup policy. Checks run in a
// fixed order (length, case mix, digit, special char, common pattern) and the
// first violation is returned.
func ValidateStrength(password string) error {
	if len(password) < 8 {
		return ErrTooShort
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	if !hasLower || !hasUpper {
		return ErrNoCaseMix
	}
	if !hasDigit {
		return ErrNoDigit
	}
	if !hasSpecial {
		return ErrNoSpecialChar
	}

	lowered := strings.ToLower(password)
	for _, prefix := range commonPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return ErrCommonPattern
		}
	}

	return nil
}

// Hasher hashes and verifies passwords with bcrypt. The zero cost falls back
// to DefaultCost. Safe for concurrent use.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Verify reports whether password matches the stored bcrypt digest.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
