package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/securecargo/website-api/internal/core/domain"
	"github.com/securecargo/website-api/internal/core/ports"
	"github.com/securecargo/website-api/internal/pkg/password"
)

// First-run bootstrap credentials. Documented operational requirement: rotate
// immediately after the first deploy.
const (
	DefaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// AuthService implements login, token verification and account management.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credential pair and issues a signed token. Unknown
// username and wrong password both surface as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, *domain.User, error) {
	if username == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := password.Compare(pass, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Verify checks signature and expiry and returns the asserted user id.
func (s *AuthService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// CreateUser provisions a new account. Role defaults to "user".
func (s *AuthService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

// ChangePassword applies the authorization matrix: self-service requires the
// current password; admins may reset anyone without it.
func (s *AuthService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	target, err := s.repo.FindByID(ctx, input.TargetID)
	if err != nil {
		return err
	}

	requester, err := s.repo.FindByID(ctx, input.RequesterID)
	if err != nil {
		return err
	}

	isSelf := requester.ID == target.ID
	isAdmin := requester.Role == domain.RoleAdmin
	if !isSelf && !isAdmin {
		return domain.ErrForbidden
	}

	if isSelf && !isAdmin {
		ok, err := password.Compare(input.CurrentPassword, target.PasswordHash)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidCurrentPassword
		}
	}

	hash, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, target.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", target.ID).Bool("self", isSelf).Msg("password changed")
	return nil
}

// EnsureDefaultAdmin creates the documented first-run admin account when no
// admin-role user exists. A concurrent duplicate insert (unique username
// index) is treated as a benign no-op.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(defaultAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.User{
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Warn().
		Str("username", DefaultAdminUsername).
		Msg("default admin created with well-known password, rotate it now")
	return nil
}

func (s *AuthService) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
