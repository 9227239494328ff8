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

// StatsCache abstracts the board-stats cache (Redis). Get returns (nil, nil)
// on a cache miss.
type StatsCache interface {
	Get(ctx context.Context, boardID string) (*domain.BoardStats, error)
	Set(ctx context.Context, boardID string, stats domain.BoardStats) error
}

// StatsNotifier schedules an asynchronous stats recomputation for a board.
type StatsNotifier interface {
	Enqueue(boardID string)
}

type BoardService struct {
	boards   ports.BoardRepository
	tasks    ports.TaskRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	loader   ports.SnapshotLoader
	stats    StatsCache
	notifier StatsNotifier
	logger   zerolog.Logger
}

func NewBoardService(
	boards ports.BoardRepository,
	tasks ports.TaskRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	loader ports.SnapshotLoader,
	stats StatsCache,
	logger zerolog.Logger,
) *BoardService {
	return &BoardService{
		boards:   boards,
		tasks:    tasks,
		comments: comments,
		users:    users,
		loader:   loader,
		stats:    stats,
		logger:   logger,
	}
}

// SetStatsNotifier wires the async refresher after construction; the
// refresher itself calls back into RecomputeStats.
func (s *BoardService) SetStatsNotifier(n StatsNotifier) {
	s.notifier = n
}

// List returns every board the actor owns or is a member of, with counters.
func (s *BoardService) List(ctx context.Context, actor string) ([]ports.BoardSummary, error) {
	boards, err := s.boards.ListForUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.BoardSummary, 0, len(boards))
	for _, b := range boards {
		stats, err := s.statsFor(ctx, b)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ports.BoardSummary{Board: b, Stats: stats})
	}
	return summaries, nil
}

// Create makes the actor owner and member of a new board. Extra member ids
// are kept only when they name existing users.
func (s *BoardService) Create(ctx context.Context, actor string, input ports.CreateBoardInput) (*domain.Board, error) {
	members := []string{actor}
	if len(input.MemberIDs) > 0 {
		existing, err := s.users.FindByIDs(ctx, input.MemberIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range existing {
			if u.ID != actor {
				members = append(members, u.ID)
			}
		}
	}

	now := time.Now().UTC()
	board := &domain.Board{
		Title:     input.Title,
		OwnerID:   actor,
		MemberIDs: members,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.boards.Create(ctx, board); err != nil {
		s.logger.Error().Err(err).Msg("failed to create board")
		return nil, err
	}

	metrics.BoardsCreatedTotal.Inc()
	s.logger.Info().Str("board_id", board.ID).Str("owner_id", actor).Msg("board created")
	return board, nil
}

func (s *BoardService) Get(ctx context.Context, actor, boardID string) (*ports.BoardDetail, error) {
	bctx, err := s.loader.ForBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionBoardView}, bctx.Snapshot); err != nil {
		return nil, err
	}
	return s.detail(ctx, bctx.Board)
}

// Update changes the title and/or replaces the member set. Both are
// owner-only operations; the owner cannot be removed from the member set.
func (s *BoardService) Update(ctx context.Context, actor, boardID string, input ports.UpdateBoardInput) (*ports.BoardDetail, error) {
	bctx, err := s.loader.ForBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	// An empty patch is still gated as an update.
	if input.Members == nil {
		if err := authorize(policy.Request{Actor: actor, Action: policy.ActionBoardUpdate}, bctx.Snapshot); err != nil {
			return nil, err
		}
	}
	if input.Members != nil {
		if err := authorize(policy.Request{Actor: actor, Action: policy.ActionBoardMembers}, bctx.Snapshot); err != nil {
			return nil, err
		}
	}

	board := bctx.Board
	if input.Title != nil {
		board.Title = *input.Title
	}
	if input.Members != nil {
		members := []string{board.OwnerID}
		existing, err := s.users.FindByIDs(ctx, *input.Members)
		if err != nil {
			return nil, err
		}
		for _, u := range existing {
			if u.ID != board.OwnerID {
				members = append(members, u.ID)
			}
		}
		board.MemberIDs = members
	}
	board.UpdatedAt = time.Now().UTC()

	if err := s.boards.Update(ctx, board); err != nil {
		return nil, err
	}
	s.notify(board.ID)

	return s.detail(ctx, board)
}

// Delete removes the board and everything it owns. Children go first so a
// partial failure can never leave orphaned tasks or comments behind a
// missing board.
func (s *BoardService) Delete(ctx context.Context, actor, boardID string) error {
	bctx, err := s.loader.ForBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionBoardDelete}, bctx.Snapshot); err != nil {
		return err
	}

	if err := s.comments.DeleteByBoard(ctx, boardID); err != nil {
		return err
	}
	if err := s.tasks.DeleteByBoard(ctx, boardID); err != nil {
		return err
	}
	if err := s.boards.Delete(ctx, boardID); err != nil {
		return err
	}

	s.logger.Info().Str("board_id", boardID).Str("actor_id", actor).Msg("board deleted")
	return nil
}

func (s *BoardService) Members(ctx context.Context, actor, boardID string) ([]*domain.User, error) {
	bctx, err := s.loader.ForBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := authorize(policy.Request{Actor: actor, Action: policy.ActionBoardView}, bctx.Snapshot); err != nil {
		return nil, err
	}
	return s.users.FindByIDs(ctx, bctx.Board.MemberIDs)
}

// RecomputeStats rebuilds the cached counters for one board. Called by the
// async refresher and on cache misses.
func (s *BoardService) RecomputeStats(ctx context.Context, boardID string) error {
	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		return err
	}
	_, err = s.computeAndCache(ctx, board)
	return err
}

func (s *BoardService) detail(ctx context.Context, board *domain.Board) (*ports.BoardDetail, error) {
	members, err := s.users.FindByIDs(ctx, board.MemberIDs)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByBoard(ctx, board.ID)
	if err != nil {
		return nil, err
	}
	views, err := buildTaskViews(ctx, s.users, s.comments, tasks)
	if err != nil {
		return nil, err
	}
	return &ports.BoardDetail{Board: board, Members: members, Tasks: views}, nil
}

// statsFor reads counters through the cache, recomputing on a miss. A cache
// read failure degrades to recomputation rather than failing the request.
func (s *BoardService) statsFor(ctx context.Context, board *domain.Board) (domain.BoardStats, error) {
	if s.stats != nil {
		cached, err := s.stats.Get(ctx, board.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("board_id", board.ID).Msg("stats cache read failed")
		} else if cached != nil {
			return *cached, nil
		}
	}
	return s.computeAndCache(ctx, board)
}

func (s *BoardService) computeAndCache(ctx context.Context, board *domain.Board) (domain.BoardStats, error) {
	counts, err := s.tasks.CountsByBoard(ctx, board.ID)
	if err != nil {
		return domain.BoardStats{}, err
	}
	stats := domain.BoardStats{
		MemberCount:       len(board.MemberIDs),
		TaskCount:         counts.Total,
		TodoCount:         counts.Todo,
		HighPriorityCount: counts.HighPriority,
	}
	if s.stats != nil {
		if err := s.stats.Set(ctx, board.ID, stats); err != nil {
			s.logger.Warn().Err(err).Str("board_id", board.ID).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *BoardService) notify(boardID string) {
	if s.notifier != nil {
		s.notifier.Enqueue(boardID)
	}
}
