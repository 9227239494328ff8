package service

import (
	"context"

	"github.com/kanbanhq/board-api/internal/core/domain"
	"github.com/kanbanhq/board-api/internal/core/ports"
)

// buildTaskViews hydrates assignee/reviewer users and comment counts for a
// set of tasks using one batch query per concern.
func buildTaskViews(
	ctx context.Context,
	users ports.UserRepository,
	comments ports.CommentRepository,
	tasks []*domain.Task,
) ([]ports.TaskView, error) {
	if len(tasks) == 0 {
		return []ports.TaskView{}, nil
	}

	userIDs := make([]string, 0, len(tasks)*2)
	taskIDs := make([]string, 0, len(tasks))
	seen := make(map[string]struct{})
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
		for _, id := range []string{t.AssigneeID, t.ReviewerID} {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			userIDs = append(userIDs, id)
		}
	}

	byID := make(map[string]*domain.User, len(userIDs))
	if len(userIDs) > 0 {
		hydrated, err := users.FindByIDs(ctx, userIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range hydrated {
			byID[u.ID] = u
		}
	}

	counts, err := comments.CountByTasks(ctx, taskIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ports.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, ports.TaskView{
			Task:          t,
			Assignee:      byID[t.AssigneeID],
			Reviewer:      byID[t.ReviewerID],
			CommentsCount: counts[t.ID],
		})
	}
	return views, nil
}
