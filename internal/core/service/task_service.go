package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kanbanhq/board-api/internal/api/metrics"
	"github.com/kanbanhq/board-api/internal/core/domain"
	"github.com/kanbanhq/board-api/internal/core/policy"
	"github.com/kanbanhq/board-api/internal/core/ports"
)

type TaskService struct {
	tasks    ports.TaskRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	loader   ports.SnapshotLoader
	notifier StatsNotifier
	logger   zerolog.Logger
}

func NewTaskService(
	tasks ports.TaskRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	loader ports.SnapshotLoader,
	notifier StatsNotifier,
	logger zerolog.Logger,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		comments: comments,
		users:    users,
		loader:   loader,
		notifier: notifier,
		logger:   logger,
	}
}

// Create adds a task to a board. Only board members may create tasks, and a
// proposed assignee or reviewer must be an existing user who is a member of
// the board at this moment.
func (s *TaskService) Create(ctx context.Context, actor string, input ports.CreateTaskInput) (*ports.TaskView, error) {
	bctx, err := s.loader.ForBoard(ctx, input.BoardID)
	if err != nil {
		return nil, err
	}

	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionTaskCreate}, bctx.Snapshot); err != nil {
		return nil, err
	}
	if err := s.checkAssignment(ctx, actor, input.AssigneeID, bctx.Snapshot); err != nil {
		return nil, err
	}
	if err := s.checkAssignment(ctx, actor, input.ReviewerID, bctx.Snapshot); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		BoardID:     input.BoardID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		AssigneeID:  input.AssigneeID,
		ReviewerID:  input.ReviewerID,
		DueDate:     input.DueDate,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("board_id", input.BoardID).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	s.logger.Info().Str("task_id", task.ID).Str("board_id", task.BoardID).Msg("task created")
	s.notify(task.BoardID)

	return s.view(ctx, task)
}

// Update applies a partial update. The board a task belongs to never
// changes; assignment changes are re-validated against the board's current
// membership.
func (s *TaskService) Update(ctx context.Context, actor, taskID string, input ports.UpdateTaskInput) (*ports.TaskView, error) {
	tctx, err := s.loader.ForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionTaskUpdate}, tctx.Snapshot); err != nil {
		return nil, err
	}

	task := tctx.Task
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.AssigneeID != nil {
		if err := s.checkAssignment(ctx, actor, *input.AssigneeID, tctx.Snapshot); err != nil {
			return nil, err
		}
		task.AssigneeID = *input.AssigneeID
	}
	if input.ReviewerID != nil {
		if err := s.checkAssignment(ctx, actor, *input.ReviewerID, tctx.Snapshot); err != nil {
			return nil, err
		}
		task.ReviewerID = *input.ReviewerID
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	s.notify(task.BoardID)

	return s.view(ctx, task)
}

// Delete removes a task and its comments. Owner-only: being assignee or
// reviewer grants no deletion right.
func (s *TaskService) Delete(ctx context.Context, actor, taskID string) error {
	tctx, err := s.loader.ForTask(ctx, taskID)
	if err != nil {
		return err
	}
	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionTaskDelete}, tctx.Snapshot); err != nil {
		return err
	}

	if err := s.comments.DeleteByTask(ctx, taskID); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}

	s.logger.Info().Str("task_id", taskID).Str("actor_id", actor).Msg("task deleted")
	s.notify(tctx.Task.BoardID)
	return nil
}

// AssignedTo lists the actor's assigned tasks across all boards.
func (s *TaskService) AssignedTo(ctx context.Context, actor string) ([]ports.TaskView, error) {
	tasks, err := s.tasks.ListByAssignee(ctx, actor)
	if err != nil {
		return nil, err
	}
	return buildTaskViews(ctx, s.users, s.comments, tasks)
}

// ReviewedBy lists the tasks the actor reviews across all boards.
func (s *TaskService) ReviewedBy(ctx context.Context, actor string) ([]ports.TaskView, error) {
	tasks, err := s.tasks.ListByReviewer(ctx, actor)
	if err != nil {
		return nil, err
	}
	return buildTaskViews(ctx, s.users, s.comments, tasks)
}

// checkAssignment validates a proposed assignee/reviewer: the policy check
// runs against the snapshot, and the candidate must name an existing user.
// An empty candidate (unset or clearing) passes.
func (s *TaskService) checkAssignment(ctx context.Context, actor, candidate string, snap policy.Snapshot) error {
	if candidate == "" {
		return nil
	}
	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionTaskAssign, Candidate: candidate}, snap); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, candidate); err != nil {
		return err
	}
	return nil
}

func (s *TaskService) view(ctx context.Context, task *domain.Task) (*ports.TaskView, error) {
	views, err := buildTaskViews(ctx, s.users, s.comments, []*domain.Task{task})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *TaskService) notify(boardID string) {
	if s.notifier != nil {
		s.notifier.Enqueue(boardID)
	}
}
