package policy

// DenyReason classifies why a decision was denied. The taxonomy is exactly
// what a caller needs to produce a precise user-facing error without
// re-deriving the rule.
type DenyReason string

const (
	DenyNotBoardMember    DenyReason = "not_board_member"
	DenyNotOwner          DenyReason = "not_owner"
	DenyNotAuthor         DenyReason = "not_author"
	DenyAssigneeNotMember DenyReason = "assignee_not_member"
)

// Message returns the user-facing description of the reason.
func (r DenyReason) Message() string {
	switch r {
	case DenyNotBoardMember:
		return "you must be a board member"
	case DenyNotOwner:
		return "only the board owner may do this"
	case DenyNotAuthor:
		return "only the comment author may do this"
	case DenyAssigneeNotMember:
		return "assignee and reviewer must be board members"
	default:
		return "permission denied"
	}
}

// Verdict is the outcome of a decision. Reason is set only when denied.
type Verdict struct {
	Allowed bool
	Reason  DenyReason
}

func allow() Verdict {
	return Verdict{Allowed: true}
}

func deny(reason DenyReason) Verdict {
	return Verdict{Reason: reason}
}

// Err converts the verdict into the error-handling taxonomy: nil on Allow,
// a *DeniedError carrying the reason on Deny.
func (v Verdict) Err() error {
	if v.Allowed {
		return nil
	}
	return &DeniedError{Reason: v.Reason}
}

// DeniedError is the enforcement-adapter bridge for a Deny verdict. A denial
// is a normal, fully-specified outcome of the engine, not an engine failure.
type DeniedError struct {
	Reason DenyReason
}

func (e *DeniedError) Error() string {
	return e.Reason.Message()
}
