package ports

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

// CommentRepository defines persistence for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.Comment, error)
	// CountByTasks returns the comment count per task id. Tasks without
	// comments are absent from the map.
	CountByTasks(ctx context.Context, taskIDs []string) (map[string]int, error)
	Delete(ctx context.Context, id string) error
	// DeleteByTask and DeleteByBoard implement the deletion cascades.
	DeleteByTask(ctx context.Context, taskID string) error
	DeleteByBoard(ctx context.Context, boardID string) error
}
