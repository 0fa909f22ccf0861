package services

import (
	"context"
	"errors"
	"testing"

	"github.com/staffdir/apiserver/internal/store"
	"github.com/staffdir/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository enforcing username uniqueness.
type fakeUserRepo struct {
	users  map[string]types.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]types.User), nextID: 1}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (types.User, error) {
	user, ok := f.users[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return types.User{}, store.ErrDuplicate
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return user, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), bcrypt.MinCost)

	user, err := svc.Register(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if user.PasswordHash == "s3cret" || user.PasswordHash == "" {
		t.Fatal("plaintext must not be stored")
	}

	authed, err := svc.Authenticate(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Errorf("unexpected user id: %d", authed.ID)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), bcrypt.MinCost)

	if _, err := svc.Register(context.Background(), "alice", "one"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "two"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), bcrypt.MinCost)

	if _, err := svc.Register(context.Background(), "alice", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), bcrypt.MinCost)

	if _, err := svc.Authenticate(context.Background(), "ghost", "whatever"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
