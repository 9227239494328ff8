package ports

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
	"github.com/kanbanhq/board-api/internal/core/policy"
)

// BoardContext bundles a board with the relationship snapshot the policy
// engine needs to decide operations on it.
type BoardContext struct {
	Board    *domain.Board
	Snapshot policy.Snapshot
}

// TaskContext bundles a task, its board, and the snapshot.
type TaskContext struct {
	Task     *domain.Task
	Board    *domain.Board
	Snapshot policy.Snapshot
}

// CommentContext bundles a comment, its task and board, and the snapshot.
type CommentContext struct {
	Comment  *domain.Comment
	Task     *domain.Task
	Board    *domain.Board
	Snapshot policy.Snapshot
}

// SnapshotLoader is the read-only relationship store consumed before every
// policy decision. Each call reads the backing store fresh and returns either
// a fully-populated snapshot (absent relations as empty values, never
// partially omitted) or the matching Err*NotFound; the policy engine never
// receives a snapshot for a nonexistent entity.
type SnapshotLoader interface {
	ForBoard(ctx context.Context, boardID string) (*BoardContext, error)
	ForTask(ctx context.Context, taskID string) (*TaskContext, error)
	// ForComment resolves commentID within taskID; a comment that exists but
	// belongs to a different task is treated as not found.
	ForComment(ctx context.Context, taskID, commentID string) (*CommentContext, error)
}
