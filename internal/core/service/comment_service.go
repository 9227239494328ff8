package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kanbanhq/board-api/internal/core/domain"
	"github.com/kanbanhq/board-api/internal/core/policy"
	"github.com/kanbanhq/board-api/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	users    ports.UserRepository
	loader   ports.SnapshotLoader
	logger   zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	users ports.UserRepository,
	loader ports.SnapshotLoader,
	logger zerolog.Logger,
) *CommentService {
	return &CommentService{comments: comments, users: users, loader: loader, logger: logger}
}

// List returns a task's comments. Visibility follows board visibility.
func (s *CommentService) List(ctx context.Context, actor, taskID string) ([]ports.CommentView, error) {
	tctx, err := s.loader.ForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionCommentView}, tctx.Snapshot); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]string, 0, len(comments))
	seen := make(map[string]struct{})
	for _, c := range comments {
		if _, ok := seen[c.AuthorID]; !ok {
			seen[c.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}
	names := make(map[string]string, len(authorIDs))
	if len(authorIDs) > 0 {
		authors, err := s.users.FindByIDs(ctx, authorIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range authors {
			names[u.ID] = u.FullName
		}
	}

	views := make([]ports.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, ports.CommentView{Comment: c, AuthorName: names[c.AuthorID]})
	}
	return views, nil
}

// Create adds a comment; the actor becomes its immutable author.
func (s *CommentService) Create(ctx context.Context, actor, taskID, content string) (*ports.CommentView, error) {
	tctx, err := s.loader.ForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionCommentCreate}, tctx.Snapshot); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:    taskID,
		BoardID:   tctx.Board.ID,
		AuthorID:  actor,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		s.logger.Error().Err(err).Str("task_id", taskID).Msg("failed to create comment")
		return nil, err
	}

	author, err := s.users.FindByID(ctx, actor)
	if err != nil {
		return nil, err
	}
	return &ports.CommentView{Comment: comment, AuthorName: author.FullName}, nil
}

// Delete removes a comment. Author-only, whatever the actor's standing on
// the board.
func (s *CommentService) Delete(ctx context.Context, actor, taskID, commentID string) error {
	cctx, err := s.loader.ForComment(ctx, taskID, commentID)
	if err != nil {
		return err
	}
	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionCommentDelete}, cctx.Snapshot); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", commentID).Str("actor_id", actor).Msg("comment deleted")
	return nil
}
