package handler

import "time"

type createTaskRequest struct {
	Board       string     `json:"board" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"required,oneof=to-do in-progress review done"`
	Priority    string     `json:"priority" validate:"required,oneof=low medium high"`
	AssigneeID  string     `json:"assignee_id"`
	ReviewerID  string     `json:"reviewer_id"`
	DueDate     *time.Time `json:"due_date"`
}

// updateTaskRequest patches a task field by field. A present assignee_id
// or reviewer_id with an empty value clears the role.
type updateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=to-do in-progress review done"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	AssigneeID  *string    `json:"assignee_id"`
	ReviewerID  *string    `json:"reviewer_id"`
	DueDate     *time.Time `json:"due_date"`
}

type taskResponse struct {
	ID            string        `json:"id"`
	Board         string        `json:"board"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Status        string        `json:"status"`
	Priority      string        `json:"priority"`
	Assignee      *userResponse `json:"assignee"`
	Reviewer      *userResponse `json:"reviewer"`
	DueDate       *time.Time    `json:"due_date"`
	CommentsCount int           `json:"comments_count"`
	CreatedAt     time.Time     `json:"created_at"`
}
