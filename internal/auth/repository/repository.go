package repository

import (
	"errors"

	authdomain "insightflo-backend/internal/auth/domain"
)

// ErrDuplicateEmail is returned by Create when the email unique constraint
// rejects the insert. Concurrent signups with the same email race on this
// constraint; the loser gets this error.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the interface for user credential storage.
type UserRepository interface {
	// Create inserts a new user, assigning an ID and timestamps.
	Create(user *authdomain.User) error

	// FindByEmail returns the user with the given email, or nil if absent.
	// The match is case-sensitive, as stored.
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID returns the user with the given ID, or nil if absent.
	FindByID(id string) (*authdomain.User, error)
}
