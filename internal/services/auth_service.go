package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/fintrackhq/fintrack/internal/errors"
	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/store"
)

// Auth failures surfaced to the UI as user-facing messages.
var (
	ErrEmailTaken      = errors.New("user with this email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type authService struct {
	store  store.Store
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(st store.Store, logger *zap.Logger) AuthService {
	return &authService{store: st, logger: logger}
}

func (s *authService) SignUp(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" {
		return nil, &apperrors.ErrValidation{Field: "email", Message: "is required"}
	}
	if password == "" {
		return nil, &apperrors.ErrValidation{Field: "password", Message: "is required"}
	}
	if name == "" {
		return nil, &apperrors.ErrValidation{Field: "name", Message: "is required"}
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if findUserByEmail(users, email) != nil {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The user list is the source of truth; write the credential only once
	// the user is in it, so a failed signup cannot leave an orphan
	// password_<id> key.
	if err := s.saveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, store.PasswordKey(user.ID), string(hash)); err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}
	if err := s.setCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID))
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	user := findUserByEmail(users, email)
	if user == nil {
		return nil, ErrUserNotFound
	}

	hash, found, err := s.store.Get(ctx, store.PasswordKey(user.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	if !found || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidPassword
	}

	if err := s.setCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, nil
}

// FederatedLogin signs in a mock federated identity. A real deployment would
// delegate to the provider; the demo fabricates a Google-shaped user.
func (s *authService) FederatedLogin(ctx context.Context) (*models.User, error) {
	suffix := uuid.NewString()[:8]
	photoURL := "https://picsum.photos/200"
	user := &models.User{
		ID:       "google_" + suffix,
		Email:    fmt.Sprintf("user%s@gmail.com", suffix),
		Name:     "Google User",
		PhotoURL: &photoURL,
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if existing := findUserByEmail(users, user.Email); existing != nil {
		user = existing
	} else if err := s.saveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}

	if err := s.setCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("federated login", zap.String("user_id", user.ID))
	return user, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	return nil
}

// CurrentUser returns the authenticated identity, or nil when nobody is
// logged in.
func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, found, err := s.store.Get(ctx, store.CurrentUserKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}
	if !found {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode current user: %w", err)
	}
	return &user, nil
}

func (s *authService) loadUsers(ctx context.Context) ([]*models.User, error) {
	raw, found, err := s.store.Get(ctx, store.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if !found {
		return nil, nil
	}

	var users []*models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *authService) saveUsers(ctx context.Context, users []*models.User) error {
	encoded, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := s.store.Set(ctx, store.UsersKey, string(encoded)); err != nil {
		return fmt.Errorf("failed to store users: %w", err)
	}
	return nil
}

func (s *authService) setCurrentUser(ctx context.Context, user *models.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode current user: %w", err)
	}
	if err := s.store.Set(ctx, store.CurrentUserKey, string(encoded)); err != nil {
		return fmt.Errorf("failed to store current user: %w", err)
	}
	return nil
}

func findUserByEmail(users []*models.User, email string) *models.User {
	for _, u := range users {
		if u.Email == email {
			return u
		}
	}
	return nil
}
