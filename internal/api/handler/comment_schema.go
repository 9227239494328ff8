package handler

import "time"

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
