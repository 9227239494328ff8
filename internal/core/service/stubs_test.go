package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/kanbanhq/board-api/internal/core/domain"
	"github.com/kanbanhq/board-api/internal/core/policy"
	"github.com/kanbanhq/board-api/internal/core/ports"
)

// In-memory stand-ins for the Mongo repositories, shared by the service
// tests in this package.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(id, fullName, email string) *domain.User {
	u := &domain.User{ID: id, FullName: fullName, Email: email}
	r.users[id] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[clone.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type stubBoardRepo struct {
	boards map[string]*domain.Board
	nextID int
}

func newStubBoardRepo() *stubBoardRepo {
	return &stubBoardRepo{boards: make(map[string]*domain.Board)}
}

func (r *stubBoardRepo) Create(_ context.Context, board *domain.Board) error {
	r.nextID++
	board.ID = fmt.Sprintf("b%d", r.nextID)
	clone := *board
	r.boards[board.ID] = &clone
	return nil
}

func (r *stubBoardRepo) FindByID(_ context.Context, id string) (*domain.Board, error) {
	if b, ok := r.boards[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrBoardNotFound
}

func (r *stubBoardRepo) ListForUser(_ context.Context, userID string) ([]*domain.Board, error) {
	out := make([]*domain.Board, 0)
	for _, b := range r.boards {
		if b.HasMember(userID) {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubBoardRepo) Update(_ context.Context, board *domain.Board) error {
	if _, ok := r.boards[board.ID]; !ok {
		return domain.ErrBoardNotFound
	}
	clone := *board
	r.boards[board.ID] = &clone
	return nil
}

func (r *stubBoardRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.boards[id]; !ok {
		return domain.ErrBoardNotFound
	}
	delete(r.boards, id)
	return nil
}

type stubTaskRepo struct {
	tasks  map[string]*domain.Task
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.nextID++
	task.ID = fmt.Sprintf("t%d", r.nextID)
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	if t, ok := r.tasks[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) list(match func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0)
	for _, t := range r.tasks {
		if match(t) {
			clone := *t
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubTaskRepo) ListByBoard(_ context.Context, boardID string) ([]*domain.Task, error) {
	return r.list(func(t *domain.Task) bool { return t.BoardID == boardID }), nil
}

func (r *stubTaskRepo) ListByAssignee(_ context.Context, userID string) ([]*domain.Task, error) {
	return r.list(func(t *domain.Task) bool { return t.AssigneeID == userID }), nil
}

func (r *stubTaskRepo) ListByReviewer(_ context.Context, userID string) ([]*domain.Task, error) {
	return r.list(func(t *domain.Task) bool { return t.ReviewerID == userID }), nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) DeleteByBoard(_ context.Context, boardID string) error {
	for id, t := range r.tasks {
		if t.BoardID == boardID {
			delete(r.tasks, id)
		}
	}
	return nil
}

func (r *stubTaskRepo) CountsByBoard(_ context.Context, boardID string) (ports.TaskCounts, error) {
	var counts ports.TaskCounts
	for _, t := range r.tasks {
		if t.BoardID != boardID {
			continue
		}
		counts.Total++
		if t.Status == domain.StatusTodo {
			counts.Todo++
		}
		if t.Priority == domain.PriorityHigh {
			counts.HighPriority++
		}
	}
	return counts, nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.nextID++
	comment.ID = fmt.Sprintf("c%d", r.nextID)
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	if c, ok := r.comments[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCommentNotFound
}

func (r *stubCommentRepo) ListByTask(_ context.Context, taskID string) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, 0)
	for _, c := range r.comments {
		if c.TaskID == taskID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCommentRepo) CountByTasks(_ context.Context, taskIDs []string) (map[string]int, error) {
	wanted := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		wanted[id] = struct{}{}
	}
	counts := make(map[string]int)
	for _, c := range r.comments {
		if _, ok := wanted[c.TaskID]; ok {
			counts[c.TaskID]++
		}
	}
	return counts, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) DeleteByTask(_ context.Context, taskID string) error {
	for id, c := range r.comments {
		if c.TaskID == taskID {
			delete(r.comments, id)
		}
	}
	return nil
}

func (r *stubCommentRepo) DeleteByBoard(_ context.Context, boardID string) error {
	for id, c := range r.comments {
		if c.BoardID == boardID {
			delete(r.comments, id)
		}
	}
	return nil
}

// stubLoader builds snapshots directly from the stub repositories, mirroring
// the Mongo loader's read-fresh behavior.
type stubLoader struct {
	boards   *stubBoardRepo
	tasks    *stubTaskRepo
	comments *stubCommentRepo
}

func (l *stubLoader) snapshot(board *domain.Board) policy.Snapshot {
	return policy.Snapshot{BoardOwner: board.OwnerID, BoardMembers: board.MemberIDs}
}

func (l *stubLoader) ForBoard(ctx context.Context, boardID string) (*ports.BoardContext, error) {
	board, err := l.boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return &ports.BoardContext{Board: board, Snapshot: l.snapshot(board)}, nil
}

func (l *stubLoader) ForTask(ctx context.Context, taskID string) (*ports.TaskContext, error) {
	task, err := l.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	board, err := l.boards.FindByID(ctx, task.BoardID)
	if err != nil {
		return nil, err
	}
	snap := l.snapshot(board)
	snap.TaskAssignee = task.AssigneeID
	snap.TaskReviewer = task.ReviewerID
	return &ports.TaskContext{Task: task, Board: board, Snapshot: snap}, nil
}

func (l *stubLoader) ForComment(ctx context.Context, taskID, commentID string) (*ports.CommentContext, error) {
	comment, err := l.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.TaskID != taskID {
		return nil, domain.ErrCommentNotFound
	}
	tctx, err := l.ForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	snap := tctx.Snapshot
	snap.CommentAuthor = comment.AuthorID
	return &ports.CommentContext{
		Comment:  comment,
		Task:     tctx.Task,
		Board:    tctx.Board,
		Snapshot: snap,
	}, nil
}

// stubNotifier records enqueued board ids.
type stubNotifier struct {
	enqueued []string
}

func (n *stubNotifier) Enqueue(boardID string) {
	n.enqueued = append(n.enqueued, boardID)
}

// env bundles the stub world a service test operates on.
type env struct {
	users    *stubUserRepo
	boards   *stubBoardRepo
	tasks    *stubTaskRepo
	comments *stubCommentRepo
	loader   *stubLoader
	notifier *stubNotifier
}

func newEnv() *env {
	users := newStubUserRepo()
	boards := newStubBoardRepo()
	tasks := newStubTaskRepo()
	comments := newStubCommentRepo()
	return &env{
		users:    users,
		boards:   boards,
		tasks:    tasks,
		comments: comments,
		loader:   &stubLoader{boards: boards, tasks: tasks, comments: comments},
		notifier: &stubNotifier{},
	}
}

// seedBoard inserts a board with the given owner and members directly.
func (e *env) seedBoard(id, owner string, members ...string) *domain.Board {
	b := &domain.Board{ID: id, Title: "board " + id, OwnerID: owner, MemberIDs: append([]string{owner}, members...)}
	e.boards.boards[id] = b
	return b
}

func (e *env) seedTask(id, boardID, createdBy string) *domain.Task {
	t := &domain.Task{
		ID: id, BoardID: boardID, Title: "task " + id,
		Status: domain.StatusTodo, Priority: domain.PriorityMedium,
		CreatedBy: createdBy,
	}
	e.tasks.tasks[id] = t
	return t
}

func (e *env) seedComment(id, taskID, boardID, author string) *domain.Comment {
	c := &domain.Comment{ID: id, TaskID: taskID, BoardID: boardID, AuthorID: author, Content: "comment " + id}
	e.comments.comments[id] = c
	return c
}
