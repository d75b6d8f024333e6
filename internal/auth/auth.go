package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"groshop/m/domain"
	"groshop/m/internal/store"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. Callers never learn which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUsernameTaken is returned by Register when the username already exists.
var ErrUsernameTaken = errors.New("username already exists")

// Identity is the authenticated user attached to a session.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

// Service verifies credentials and creates accounts.
type Service struct {
	accounts store.AccountRepository
}

func NewService(accounts store.AccountRepository) *Service {
	return &Service{accounts: accounts}
}

// Authenticate checks a username/password pair against the account store.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return Identity{}, ErrInvalidCredentials
	}

	user, err := s.accounts.GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return Identity{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Register creates an admin account. Username uniqueness is enforced by the
// account store.
func (s *Service) Register(ctx context.Context, username, password string) (Identity, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return Identity{}, err
	}
	id, err := s.accounts.Create(ctx, domain.User{
		Username: strings.TrimSpace(username),
		Password: hash,
		Role:     domain.RoleAdmin,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return Identity{}, ErrUsernameTaken
	}
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: id, Username: strings.TrimSpace(username), Role: domain.RoleAdmin}, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
