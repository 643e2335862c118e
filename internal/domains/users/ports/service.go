package ports

import (
	"context"

	"github.com/pickbotics/storefront/internal/domains/users/domain"
)

// Service exposes the account use cases to the transport layer.
type Service interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, username string)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
