package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffdir/apiserver/internal/store"
	"github.com/staffdir/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned when registering a username that is taken.
var ErrUserExists = errors.New("user already exists")

// ErrUserNotFound is returned when authenticating an unknown username.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned when the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// UserService handles registration and credential verification. Plaintext
// passwords exist only on the stack of these two methods; only the bcrypt
// hash is ever persisted.
type UserService struct {
	repo       UserRepository
	bcryptCost int
}

// NewUserService constructs a UserService. cost is the bcrypt work factor;
// zero selects bcrypt.DefaultCost.
func NewUserService(repo UserRepository, cost int) *UserService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: cost}
}

// Register hashes the password and creates the user. A duplicate username
// yields ErrUserExists; the store's unique constraint is the authority, so
// concurrent registrations of the same name cannot both succeed.
func (s *UserService) Register(ctx context.Context, username, password string) (types.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, types.User{
		Username:     username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return types.User{}, ErrUserExists
		}
		return types.User{}, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the matched user.
// Callers deciding what to expose over HTTP should collapse ErrUserNotFound
// and ErrInvalidCredentials into one response.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrUserNotFound
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID loads a user by identifier.
func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}
