package handler

import (
	"github.com/kanbanhq/board-api/internal/core/domain"
	"github.com/kanbanhq/board-api/internal/core/ports"
)

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, FullName: u.FullName}
}

func toUserResponsePtr(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	r := toUserResponse(u)
	return &r
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toBoardSummaryResponse(s ports.BoardSummary) boardSummaryResponse {
	return boardSummaryResponse{
		ID:                 s.Board.ID,
		Title:              s.Board.Title,
		OwnerID:            s.Board.OwnerID,
		MemberCount:        s.Stats.MemberCount,
		TicketCount:        s.Stats.TaskCount,
		TasksToDoCount:     s.Stats.TodoCount,
		TasksHighPrioCount: s.Stats.HighPriorityCount,
	}
}

func toBoardDetailResponse(d *ports.BoardDetail) boardDetailResponse {
	var todo, highPrio int
	for _, t := range d.Tasks {
		if t.Task.Status == domain.StatusTodo {
			todo++
		}
		if t.Task.Priority == domain.PriorityHigh {
			highPrio++
		}
	}
	return boardDetailResponse{
		boardSummaryResponse: boardSummaryResponse{
			ID:                 d.Board.ID,
			Title:              d.Board.Title,
			OwnerID:            d.Board.OwnerID,
			MemberCount:        len(d.Members),
			TicketCount:        len(d.Tasks),
			TasksToDoCount:     todo,
			TasksHighPrioCount: highPrio,
		},
		Members: toUserResponses(d.Members),
		Tasks:   toTaskResponses(d.Tasks),
	}
}

func toTaskResponse(v ports.TaskView) taskResponse {
	return taskResponse{
		ID:            v.Task.ID,
		Board:         v.Task.BoardID,
		Title:         v.Task.Title,
		Description:   v.Task.Description,
		Status:        string(v.Task.Status),
		Priority:      string(v.Task.Priority),
		Assignee:      toUserResponsePtr(v.Assignee),
		Reviewer:      toUserResponsePtr(v.Reviewer),
		DueDate:       v.Task.DueDate,
		CommentsCount: v.CommentsCount,
		CreatedAt:     v.Task.CreatedAt,
	}
}

func toTaskResponses(views []ports.TaskView) []taskResponse {
	out := make([]taskResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toTaskResponse(v))
	}
	return out
}

func toCommentResponse(v ports.CommentView) commentResponse {
	return commentResponse{
		ID:        v.Comment.ID,
		Author:    v.AuthorName,
		Content:   v.Comment.Content,
		CreatedAt: v.Comment.CreatedAt,
	}
}

func toCommentResponses(views []ports.CommentView) []commentResponse {
	out := make([]commentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toCommentResponse(v))
	}
	return out
}
