package ports

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

// BoardRepository defines persistence for boards.
type BoardRepository interface {
	// Create inserts the board and fills in its generated ID.
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id string) (*domain.Board, error)
	// ListForUser returns every board the user owns or is a member of.
	ListForUser(ctx context.Context, userID string) ([]*domain.Board, error)
	// Update persists title and member-set changes. Owner is immutable.
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id string) error
}
