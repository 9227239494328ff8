// Package policy decides, for every mutating or read operation on a board,
// task, or comment, whether the acting user may perform it, given their
// relationship to the target (owner, member, assignee, reviewer, author).
//
// The engine is a pure function over a request and a relationship snapshot:
// no I/O, no shared state, safe to call from any number of concurrent
// request handlers. Callers assemble the snapshot (see ports.SnapshotLoader)
// and translate verdicts into transport responses; the engine itself never
// touches storage or HTTP.
package policy

// Action identifies an operation subject to access control.
type Action string

const (
	ActionBoardView     Action = "board.view"
	ActionBoardUpdate   Action = "board.update"
	ActionBoardDelete   Action = "board.delete"
	ActionBoardMembers  Action = "board.manage_members"
	ActionTaskCreate    Action = "task.create"
	ActionTaskUpdate    Action = "task.update"
	ActionTaskAssign    Action = "task.assign"
	ActionTaskDelete    Action = "task.delete"
	ActionCommentView   Action = "comment.view"
	ActionCommentCreate Action = "comment.create"
	ActionCommentDelete Action = "comment.delete"
)

// Request is a single decision to make. Candidate is only consulted for
// ActionTaskAssign and names the proposed assignee or reviewer.
type Request struct {
	Actor     string
	Action    Action
	Candidate string
}

// Decide evaluates req against snap and returns a verdict. Every rule reads
// the one snapshot it was given, so a decision can never mix stale and fresh
// membership data. When rules conflict the most restrictive applies.
func Decide(req Request, snap Snapshot) Verdict {
	switch req.Action {
	case ActionBoardView, ActionTaskCreate, ActionTaskUpdate,
		ActionCommentView, ActionCommentCreate:
		// Member-level actions: owner or member.
		if !snap.isMember(req.Actor) {
			return deny(DenyNotBoardMember)
		}
		return allow()

	case ActionBoardUpdate, ActionBoardDelete, ActionBoardMembers, ActionTaskDelete:
		// Owner-only actions. Non-members are reported as non-members so the
		// caller does not leak whether a board merely exists beyond what a
		// membership check would.
		if !snap.isMember(req.Actor) {
			return deny(DenyNotBoardMember)
		}
		if req.Actor != snap.BoardOwner {
			return deny(DenyNotOwner)
		}
		return allow()

	case ActionTaskAssign:
		// The candidate check runs first: proposing a non-member always
		// fails with assignee_not_member, whatever the actor's standing.
		if req.Candidate != "" && !snap.isMember(req.Candidate) {
			return deny(DenyAssigneeNotMember)
		}
		if !snap.isMember(req.Actor) {
			return deny(DenyNotBoardMember)
		}
		return allow()

	case ActionCommentDelete:
		// Author-only. Ownership of the board never overrides authorship.
		if req.Actor == "" || req.Actor != snap.CommentAuthor {
			return deny(DenyNotAuthor)
		}
		return allow()
	}

	// Unknown action: deny. A correct caller never reaches this.
	return deny(DenyNotBoardMember)
}
