package ports

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users matching ids. Unknown ids are silently
	// omitted from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
}
