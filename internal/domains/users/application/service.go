package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pickbotics/storefront/internal/domains/users/domain"
	"github.com/pickbotics/storefront/internal/domains/users/ports"
	apperrors "github.com/pickbotics/storefront/internal/shared/errors"
)

// Service exposes the account use cases. Registration failures surface as
// field-keyed errors so the transport can return them verbatim.
type Service struct {
	repo     ports.Repository
	sessions ports.SessionStore
}

func NewService(repo ports.Repository, sessions ports.SessionStore) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Service{repo: repo, sessions: sessions}
}

// Register creates an account, reporting every invalid field at once.
func (s *Service) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	fieldErrs := apperrors.NewFieldErrors()

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		fieldErrs.Add(apperrors.FieldRole, "Role must be ADMIN or USER")
	}

	user := &domain.User{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
		Role:     parsedRole,
	}
	if user.Username == "" {
		fieldErrs.Add(apperrors.FieldUsername, "Username is required")
	}
	switch {
	case user.Password == "":
		fieldErrs.Add(apperrors.FieldPassword, "Password is required")
	case len(user.Password) < 4:
		fieldErrs.Add(apperrors.FieldPassword, "Password must be at least 4 characters")
	}

	if user.Username != "" {
		if existing, err := s.repo.GetByUsername(ctx, user.Username); err == nil && existing != nil {
			fieldErrs.Add(apperrors.FieldUsername, "Username is already taken")
		} else if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return nil, err
		}
	}
	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}
	return s.repo.Save(ctx, user)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Login verifies credentials and opens a session. The token is opaque to
// callers.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", ports.ErrInvalidCredentials
	}
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", ports.ErrInvalidCredentials
		}
		return "", err
	}
	if !user.CheckPassword(password) {
		return "", ports.ErrInvalidCredentials
	}
	token := fmt.Sprintf("%s:%d", username, time.Now().UnixNano())
	if err := s.sessions.Save(ctx, username, token); err != nil {
		return "", err
	}
	return token, nil
}

// Logout closes the user's session if one exists.
func (s *Service) Logout(ctx context.Context, username string) {
	if strings.TrimSpace(username) == "" {
		return
	}
	_ = s.sessions.Delete(ctx, username)
}

var _ ports.Service = (*Service)(nil)
