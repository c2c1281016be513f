package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Every expense belongs to exactly one user,
// and deleting a user cascades to their expenses.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

var (
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingField       = errors.New("required field is empty")
)
