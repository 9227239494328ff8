package mongo

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
	"github.com/kanbanhq/board-api/internal/core/policy"
	"github.com/kanbanhq/board-api/internal/core/ports"
)

// SnapshotLoader assembles the relationship snapshot the policy engine
// consumes. Every call reads the backing collections fresh: snapshots are
// request-scoped and never cached, so a membership change is visible to the
// very next decision.
type SnapshotLoader struct {
	boards   *BoardRepository
	tasks    *TaskRepository
	comments *CommentRepository
}

func NewSnapshotLoader(boards *BoardRepository, tasks *TaskRepository, comments *CommentRepository) *SnapshotLoader {
	return &SnapshotLoader{boards: boards, tasks: tasks, comments: comments}
}

func (l *SnapshotLoader) ForBoard(ctx context.Context, boardID string) (*ports.BoardContext, error) {
	board, err := l.boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return &ports.BoardContext{
		Board:    board,
		Snapshot: boardSnapshot(board),
	}, nil
}

func (l *SnapshotLoader) ForTask(ctx context.Context, taskID string) (*ports.TaskContext, error) {
	task, err := l.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	board, err := l.boards.FindByID(ctx, task.BoardID)
	if err != nil {
		return nil, err
	}

	snap := boardSnapshot(board)
	snap.TaskAssignee = task.AssigneeID
	snap.TaskReviewer = task.ReviewerID

	return &ports.TaskContext{Task: task, Board: board, Snapshot: snap}, nil
}

func (l *SnapshotLoader) ForComment(ctx context.Context, taskID, commentID string) (*ports.CommentContext, error) {
	comment, err := l.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	// A comment id resolved under the wrong task is not found, not forbidden.
	if comment.TaskID != taskID {
		return nil, domain.ErrCommentNotFound
	}
	task, err := l.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	board, err := l.boards.FindByID(ctx, task.BoardID)
	if err != nil {
		return nil, err
	}

	snap := boardSnapshot(board)
	snap.TaskAssignee = task.AssigneeID
	snap.TaskReviewer = task.ReviewerID
	snap.CommentAuthor = comment.AuthorID

	return &ports.CommentContext{Comment: comment, Task: task, Board: board, Snapshot: snap}, nil
}

func boardSnapshot(board *domain.Board) policy.Snapshot {
	return policy.Snapshot{
		BoardOwner:   board.OwnerID,
		BoardMembers: board.MemberIDs,
	}
}
