package ports

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

// CreateBoardInput carries the data for creating a board. MemberIDs may name
// additional members; unknown ids are dropped, and the creator is always
// included as owner and member.
type CreateBoardInput struct {
	Title     string
	MemberIDs []string
}

// UpdateBoardInput is a partial update. Nil fields are left unchanged.
// Setting Members replaces the whole member set (the owner is re-added if
// omitted).
type UpdateBoardInput struct {
	Title   *string
	Members *[]string
}

// BoardSummary is the list-view shape: the board plus its counters.
type BoardSummary struct {
	Board *domain.Board
	Stats domain.BoardStats
}

// BoardDetail is the full board view with hydrated members and tasks.
type BoardDetail struct {
	Board   *domain.Board
	Members []*domain.User
	Tasks   []TaskView
}

// BoardService defines use-case operations on boards. Every operation takes
// the acting user and enforces the access policy before touching storage.
type BoardService interface {
	List(ctx context.Context, actor string) ([]BoardSummary, error)
	Create(ctx context.Context, actor string, input CreateBoardInput) (*domain.Board, error)
	Get(ctx context.Context, actor, boardID string) (*BoardDetail, error)
	Update(ctx context.Context, actor, boardID string, input UpdateBoardInput) (*BoardDetail, error)
	// Delete removes the board and cascades to its tasks and their comments.
	Delete(ctx context.Context, actor, boardID string) error
	Members(ctx context.Context, actor, boardID string) ([]*domain.User, error)
}
