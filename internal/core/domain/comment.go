package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment belongs to exactly one task. The author is fixed at creation.
// BoardID is denormalized so a board deletion can cascade to comments with
// a single query.
type Comment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	BoardID   string    `json:"board_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
