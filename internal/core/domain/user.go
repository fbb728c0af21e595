package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Auth errors. Login failures deliberately collapse into a single sentinel so
// the API cannot be used to enumerate usernames.
var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidToken           = errors.New("invalid token")
	ErrForbidden              = errors.New("access forbidden")
	ErrUserExists             = errors.New("username already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidRole            = errors.New("invalid role")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
)

// User models an admin-panel account. PasswordHash holds the scrypt-derived
// key and its salt in `hexkey.hexsalt` form and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
