package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/fintrackhq/fintrack/internal/store"
)

func newTestAuthService() (AuthService, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewAuthService(st, zap.NewNop()), st
}

func TestAuthService_SignUpAndLogin(t *testing.T) {
	service, st := newTestAuthService()
	ctx := context.Background()

	user, err := service.SignUp(ctx, "alice@example.com", "s3cret", "Alice")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}

	// Credential is stored hashed, never in the clear.
	hash, found, _ := st.Get(ctx, store.PasswordKey(user.ID))
	if !found {
		t.Fatal("expected stored credential")
	}
	if hash == "s3cret" {
		t.Error("credential stored in plaintext")
	}

	current, err := service.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current == nil || current.ID != user.ID {
		t.Errorf("expected %s logged in after sign-up", user.ID)
	}

	loggedIn, err := service.Login(ctx, "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned wrong user %s", loggedIn.ID)
	}
}

func TestAuthService_SignUpDuplicateEmail(t *testing.T) {
	service, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := service.SignUp(ctx, "alice@example.com", "s3cret", "Alice"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	_, err := service.SignUp(ctx, "alice@example.com", "other", "Alice Again")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	service, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := service.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	service.SignUp(ctx, "alice@example.com", "s3cret", "Alice")
	if _, err := service.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	service, _ := newTestAuthService()
	ctx := context.Background()

	service.SignUp(ctx, "alice@example.com", "s3cret", "Alice")
	if err := service.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	current, err := service.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current != nil {
		t.Errorf("expected nobody logged in, got %s", current.ID)
	}
}

func TestAuthService_FederatedLogin(t *testing.T) {
	service, _ := newTestAuthService()
	ctx := context.Background()

	user, err := service.FederatedLogin(ctx)
	if err != nil {
		t.Fatalf("FederatedLogin failed: %v", err)
	}
	if user.Name != "Google User" {
		t.Errorf("unexpected name %q", user.Name)
	}
	if user.PhotoURL == nil {
		t.Error("expected avatar URL on federated identity")
	}

	current, _ := service.CurrentUser(ctx)
	if current == nil || current.ID != user.ID {
		t.Error("expected federated user logged in")
	}
}

// failingUserListStore rejects writes to the user list but accepts everything
// else, to exercise partial-failure paths during sign-up.
type failingUserListStore struct {
	*store.MemoryStore
}

func (s *failingUserListStore) Set(ctx context.Context, key, value string) error {
	if key == store.UsersKey {
		return errors.New("write refused")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestAuthService_SignUpFailedUserWriteLeavesNoCredential(t *testing.T) {
	st := &failingUserListStore{MemoryStore: store.NewMemoryStore()}
	service := NewAuthService(st, zap.NewNop())
	ctx := context.Background()

	if _, err := service.SignUp(ctx, "alice@example.com", "s3cret", "Alice"); err == nil {
		t.Fatal("expected sign-up to fail when the user list cannot be written")
	}

	keys, err := st.Keys(ctx, "password_")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("orphan credential keys left behind: %v", keys)
	}

	current, err := service.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current != nil {
		t.Errorf("expected nobody logged in after failed sign-up, got %s", current.ID)
	}
}

func TestAuthService_SignUpValidation(t *testing.T) {
	service, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := service.SignUp(ctx, "", "pw", "Alice"); err == nil {
		t.Error("expected error for empty email")
	}
	if _, err := service.SignUp(ctx, "a@example.com", "", "Alice"); err == nil {
		t.Error("expected error for empty password")
	}
	if _, err := service.SignUp(ctx, "a@example.com", "pw", ""); err == nil {
		t.Error("expected error for empty name")
	}
}
