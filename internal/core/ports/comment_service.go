package ports

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

// CommentView is a comment with its author's display name.
type CommentView struct {
	Comment    *domain.Comment
	AuthorName string
}

// CommentService defines use-case operations on task comments.
type CommentService interface {
	List(ctx context.Context, actor, taskID string) ([]CommentView, error)
	Create(ctx context.Context, actor, taskID, content string) (*CommentView, error)
	Delete(ctx context.Context, actor, taskID, commentID string) error
}
