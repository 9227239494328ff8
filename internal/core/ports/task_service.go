package ports

import (
	"context"
	"time"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

// CreateTaskInput carries the data for creating a task on a board.
// AssigneeID and ReviewerID are optional; when set they must name existing
// users who are members of the board.
type CreateTaskInput struct {
	BoardID     string
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	AssigneeID  string
	ReviewerID  string
	DueDate     *time.Time
}

// UpdateTaskInput is a partial update. Nil fields are left unchanged; an
// empty-string AssigneeID or ReviewerID clears the slot. The board a task
// belongs to can never change.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssigneeID  *string
	ReviewerID  *string
	DueDate     *time.Time
}

// TaskView is a task with its people hydrated for responses.
type TaskView struct {
	Task          *domain.Task
	Assignee      *domain.User // nil when unset
	Reviewer      *domain.User // nil when unset
	CommentsCount int
}

// TaskService defines use-case operations on tasks.
type TaskService interface {
	Create(ctx context.Context, actor string, input CreateTaskInput) (*TaskView, error)
	Update(ctx context.Context, actor, taskID string, input UpdateTaskInput) (*TaskView, error)
	// Delete removes the task and cascades to its comments.
	Delete(ctx context.Context, actor, taskID string) error
	AssignedTo(ctx context.Context, actor string) ([]TaskView, error)
	ReviewedBy(ctx context.Context, actor string) ([]TaskView, error)
}
