package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kanbanhq/board-api/internal/core/domain"
	"github.com/kanbanhq/board-api/internal/core/policy"
	"github.com/kanbanhq/board-api/internal/core/ports"
)

func newTaskService(e *env) *TaskService {
	return NewTaskService(e.tasks, e.comments, e.users, e.loader, e.notifier, zerolog.Nop())
}

func TestTaskService_Create_MemberSucceeds(t *testing.T) {
	e := newEnv()
	e.users.add("u2", "Two", "u2@example.com")
	e.seedBoard("board1", "u1", "u2")
	svc := newTaskService(e)

	view, err := svc.Create(context.Background(), "u2", ports.CreateTaskInput{
		BoardID:    "board1",
		Title:      "write docs",
		Status:     domain.StatusTodo,
		Priority:   domain.PriorityHigh,
		AssigneeID: "u2",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if view.Task.CreatedBy != "u2" {
		t.Fatalf("unexpected creator: %s", view.Task.CreatedBy)
	}
	if view.Assignee == nil || view.Assignee.ID != "u2" {
		t.Fatalf("assignee not hydrated: %+v", view.Assignee)
	}
	if len(e.notifier.enqueued) != 1 {
		t.Fatalf("expected stats refresh, got %v", e.notifier.enqueued)
	}
}

func TestTaskService_Create_NonMemberDenied(t *testing.T) {
	e := newEnv()
	e.seedBoard("board1", "u1")
	svc := newTaskService(e)

	_, err := svc.Create(context.Background(), "u9", ports.CreateTaskInput{
		BoardID: "board1", Title: "x", Status: domain.StatusTodo, Priority: domain.PriorityLow,
	})
	if got := denyReason(t, err); got != policy.DenyNotBoardMember {
		t.Fatalf("unexpected reason: %s", got)
	}
}

func TestTaskService_Create_AssigneeMustBeMember(t *testing.T) {
	e := newEnv()
	e.users.add("u3", "Three", "u3@example.com")
	e.seedBoard("board1", "u1", "u2")
	svc := newTaskService(e)

	_, err := svc.Create(context.Background(), "u1", ports.CreateTaskInput{
		BoardID: "board1", Title: "x", Status: domain.StatusTodo, Priority: domain.PriorityLow,
		AssigneeID: "u3",
	})
	if got := denyReason(t, err); got != policy.DenyAssigneeNotMember {
		t.Fatalf("unexpected reason: %s", got)
	}
}

func TestTaskService_Create_ReviewerMustBeMember(t *testing.T) {
	e := newEnv()
	e.seedBoard("board1", "u1", "u2")
	svc := newTaskService(e)

	_, err := svc.Create(context.Background(), "u1", ports.CreateTaskInput{
		BoardID: "board1", Title: "x", Status: domain.StatusTodo, Priority: domain.PriorityLow,
		ReviewerID: "u9",
	})
	if got := denyReason(t, err); got != policy.DenyAssigneeNotMember {
		t.Fatalf("unexpected reason: %s", got)
	}
}

func TestTaskService_Update_AnyMemberMayEdit(t *testing.T) {
	e := newEnv()
	e.seedBoard("board1", "u1", "u2", "u3")
	e.seedTask("task1", "board1", "u1")
	svc := newTaskService(e)

	status := domain.StatusDone
	view, err := svc.Update(context.Background(), "u3", "task1", ports.UpdateTaskInput{Status: &status})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if view.Task.Status != domain.StatusDone {
		t.Fatalf("status not applied: %s", view.Task.Status)
	}
}

func TestTaskService_Update_ClearAssignee(t *testing.T) {
	e := newEnv()
	e.seedBoard("board1", "u1", "u2")
	task := e.seedTask("task1", "board1", "u1")
	task.AssigneeID = "u2"
	svc := newTaskService(e)

	empty := ""
	view, err := svc.Update(context.Background(), "u1", "task1", ports.UpdateTaskInput{AssigneeID: &empty})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if view.Task.AssigneeID != "" {
		t.Fatalf("assignee not cleared: %s", view.Task.AssigneeID)
	}
	if view.Assignee != nil {
		t.Fatalf("expected nil assignee in view")
	}
}

func TestTaskService_Update_AssigneeSurvivesMembershipChange(t *testing.T) {
	e := newEnv()
	e.users.add("u2", "Two", "u2@example.com")
	e.seedBoard("board1", "u1", "u2")
	task := e.seedTask("task1", "board1", "u1")
	task.AssigneeID = "u2"

	// u2 loses membership; the stale assignment stays until explicitly
	// changed.
	board := e.boards.boards["board1"]
	board.MemberIDs = []string{"u1"}

	svc := newTaskService(e)
	title := "still here"
	view, err := svc.Update(context.Background(), "u1", "task1", ports.UpdateTaskInput{Title: &title})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if view.Task.AssigneeID != "u2" {
		t.Fatalf("stale assignment should persist, got %q", view.Task.AssigneeID)
	}

	// But re-assigning the now-removed user is rejected.
	again := "u2"
	_, err = svc.Update(context.Background(), "u1", "task1", ports.UpdateTaskInput{AssigneeID: &again})
	if got := denyReason(t, err); got != policy.DenyAssigneeNotMember {
		t.Fatalf("unexpected reason: %s", got)
	}
}

func TestTaskService_Delete_RolesDoNotOverride(t *testing.T) {
	e := newEnv()
	e.seedBoard("board1", "u1", "u2", "u3")
	task := e.seedTask("task1", "board1", "u1")
	task.AssigneeID = "u2"
	task.ReviewerID = "u3"
	e.seedComment("comment1", "task1", "board1", "u2")
	svc := newTaskService(e)

	// Assignee and reviewer are plain members; neither role grants delete.
	for _, actor := range []string{"u2", "u3"} {
		err := svc.Delete(context.Background(), actor, "task1")
		if got := denyReason(t, err); got != policy.DenyNotOwner {
			t.Fatalf("actor %s: unexpected reason %s", actor, got)
		}
	}

	if err := svc.Delete(context.Background(), "u1", "task1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(e.tasks.tasks) != 0 {
		t.Fatalf("task not deleted")
	}
	if len(e.comments.comments) != 0 {
		t.Fatalf("comments not cascaded")
	}
}

func TestTaskService_Delete_StrangerGetsMembershipDenial(t *testing.T) {
	e := newEnv()
	e.seedBoard("board1", "u1", "u2")
	e.seedTask("task1", "board1", "u1")
	svc := newTaskService(e)

	err := svc.Delete(context.Background(), "u9", "task1")
	if got := denyReason(t, err); got != policy.DenyNotBoardMember {
		t.Fatalf("unexpected reason: %s", got)
	}
}

func TestTaskService_Update_UnknownTask(t *testing.T) {
	e := newEnv()
	svc := newTaskService(e)

	title := "x"
	_, err := svc.Update(context.Background(), "u1", "missing", ports.UpdateTaskInput{Title: &title})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_AssignedTo_CrossBoard(t *testing.T) {
	e := newEnv()
	e.seedBoard("board1", "u1", "u2")
	e.seedBoard("board2", "u3", "u2")
	t1 := e.seedTask("task1", "board1", "u1")
	t1.AssigneeID = "u2"
	t2 := e.seedTask("task2", "board2", "u3")
	t2.AssigneeID = "u2"
	t3 := e.seedTask("task3", "board2", "u3")
	t3.ReviewerID = "u2"
	e.seedComment("comment1", "task1", "board1", "u1")
	svc := newTaskService(e)

	assigned, err := svc.AssignedTo(context.Background(), "u2")
	if err != nil {
		t.Fatalf("AssignedTo returned error: %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("expected 2 assigned tasks, got %d", len(assigned))
	}
	if assigned[0].CommentsCount != 1 {
		t.Fatalf("expected comment count 1, got %d", assigned[0].CommentsCount)
	}

	reviewing, err := svc.ReviewedBy(context.Background(), "u2")
	if err != nil {
		t.Fatalf("ReviewedBy returned error: %v", err)
	}
	if len(reviewing) != 1 || reviewing[0].Task.ID != "task3" {
		t.Fatalf("unexpected reviewing list: %+v", reviewing)
	}
}
