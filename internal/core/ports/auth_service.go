package ports

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration, login, and email lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// LookupEmail returns the user owning email, or ErrUserNotFound. Used by
	// the member picker on the frontend.
	LookupEmail(ctx context.Context, email string) (*domain.User, error)
}
