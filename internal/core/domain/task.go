package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the column a task sits in.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "to-do"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// TaskPriority represents task urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

var ErrTaskNotFound = errors.New("task not found")

// Task belongs to exactly one board, fixed at creation. AssigneeID and
// ReviewerID are optional ("" = unset); both must be board members at the
// time they are set; membership revocation does not retroactively clear
// them.
type Task struct {
	ID          string       `json:"id"`
	BoardID     string       `json:"board_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssigneeID  string       `json:"assignee_id,omitempty"`
	ReviewerID  string       `json:"reviewer_id,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
