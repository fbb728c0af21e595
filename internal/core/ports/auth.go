package ports

import (
	"context"

	"github.com/securecargo/website-api/internal/core/domain"
)

// UserRepository defines persistence for admin-panel accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Create persists the user and returns the stored record. A username
	// collision yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}

// CreateUserInput carries the fields for admin user creation. Role defaults
// to domain.RoleUser when empty.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// ChangePasswordInput carries a password-change request. CurrentPassword is
// required when the requester is changing their own password and is ignored
// for admin-initiated resets.
type ChangePasswordInput struct {
	TargetID        string
	RequesterID     string
	CurrentPassword string
	NewPassword     string
}

// AuthService defines authentication and account-management use cases.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token together
	// with the authenticated user. Unknown usernames and wrong passwords are
	// indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify checks a bearer token's signature and expiry and returns the
	// user id it asserts. Pure: no repository access.
	Verify(token string) (string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	// EnsureDefaultAdmin provisions the documented first-run admin account
	// when no admin-role user exists yet. Safe to race: a concurrent
	// duplicate insert is treated as a no-op.
	EnsureDefaultAdmin(ctx context.Context) error
}
