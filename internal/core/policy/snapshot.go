package policy

// Snapshot is the flat, request-scoped view of the relationships relevant to
// a single decision. It is assembled by the storage boundary, read fresh for
// every request, and never cached or mutated by the engine.
//
// Fields that do not apply to the target are left empty: a board-level
// decision carries no task or comment facts. BoardOwner and BoardMembers are
// always populated; the engine must never see a snapshot for a nonexistent
// board.
type Snapshot struct {
	BoardOwner    string
	BoardMembers  []string
	TaskAssignee  string // "" when the task has no assignee or no task is in scope
	TaskReviewer  string // "" likewise
	CommentAuthor string // "" when no comment is in scope
}

// isMember reports whether userID is the board owner or an explicit member.
// The owner is implicitly a member everywhere membership is tested.
func (s Snapshot) isMember(userID string) bool {
	if userID == "" {
		return false
	}
	if userID == s.BoardOwner {
		return true
	}
	for _, id := range s.BoardMembers {
		if id == userID {
			return true
		}
	}
	return false
}
