package ports

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

// TaskCounts aggregates per-board task counters for board list views.
type TaskCounts struct {
	Total        int
	Todo         int
	HighPriority int
}

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	ListByBoard(ctx context.Context, boardID string) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error)
	ListByReviewer(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	// DeleteByBoard removes every task of a board (board-deletion cascade).
	DeleteByBoard(ctx context.Context, boardID string) error
	CountsByBoard(ctx context.Context, boardID string) (TaskCounts, error)
}
