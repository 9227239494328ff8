package policy

import "testing"

// boardSnapshot returns a snapshot for a board owned by u1 with u2 as an
// explicit member. u3 is a stranger everywhere in these tests.
func boardSnapshot() Snapshot {
	return Snapshot{
		BoardOwner:   "u1",
		BoardMembers: []string{"u1", "u2"},
	}
}

func TestDecide_MemberLevelActions(t *testing.T) {
	snap := boardSnapshot()
	actions := []Action{
		ActionBoardView, ActionTaskCreate, ActionTaskUpdate,
		ActionCommentView, ActionCommentCreate,
	}

	for _, action := range actions {
		for _, tc := range []struct {
			actor   string
			allowed bool
			reason  DenyReason
		}{
			{"u1", true, ""},
			{"u2", true, ""},
			{"u3", false, DenyNotBoardMember},
			{"", false, DenyNotBoardMember},
		} {
			v := Decide(Request{Actor: tc.actor, Action: action}, snap)
			if v.Allowed != tc.allowed {
				t.Errorf("%s actor=%q: allowed=%v, want %v", action, tc.actor, v.Allowed, tc.allowed)
			}
			if !tc.allowed && v.Reason != tc.reason {
				t.Errorf("%s actor=%q: reason=%q, want %q", action, tc.actor, v.Reason, tc.reason)
			}
		}
	}
}

func TestDecide_OwnerOnlyActions(t *testing.T) {
	snap := boardSnapshot()
	actions := []Action{ActionBoardUpdate, ActionBoardDelete, ActionBoardMembers, ActionTaskDelete}

	for _, action := range actions {
		if v := Decide(Request{Actor: "u1", Action: action}, snap); !v.Allowed {
			t.Errorf("%s: owner denied (%s)", action, v.Reason)
		}
		if v := Decide(Request{Actor: "u2", Action: action}, snap); v.Allowed || v.Reason != DenyNotOwner {
			t.Errorf("%s: member got %+v, want deny not_owner", action, v)
		}
		if v := Decide(Request{Actor: "u3", Action: action}, snap); v.Allowed || v.Reason != DenyNotBoardMember {
			t.Errorf("%s: stranger got %+v, want deny not_board_member", action, v)
		}
	}
}

func TestDecide_OwnerImplicitlyMember(t *testing.T) {
	// Owner absent from the explicit member list still passes every
	// membership test.
	snap := Snapshot{BoardOwner: "u1", BoardMembers: []string{"u2"}}

	if v := Decide(Request{Actor: "u1", Action: ActionBoardView}, snap); !v.Allowed {
		t.Fatalf("owner outside member list denied view: %+v", v)
	}
	if v := Decide(Request{Actor: "u1", Action: ActionTaskAssign, Candidate: "u1"}, snap); !v.Allowed {
		t.Fatalf("owner as assignment candidate denied: %+v", v)
	}
}

func TestDecide_TaskDelete_RolesNeverOverrideOwnership(t *testing.T) {
	// u2 is assignee and reviewer on the task; only the board owner may
	// delete it regardless.
	snap := boardSnapshot()
	snap.TaskAssignee = "u2"
	snap.TaskReviewer = "u2"

	if v := Decide(Request{Actor: "u2", Action: ActionTaskDelete}, snap); v.Allowed || v.Reason != DenyNotOwner {
		t.Errorf("assignee+reviewer deleting task: got %+v, want deny not_owner", v)
	}
	if v := Decide(Request{Actor: "u1", Action: ActionTaskDelete}, snap); !v.Allowed {
		t.Errorf("owner deleting task: denied (%s)", v.Reason)
	}
}

func TestDecide_TaskAssign(t *testing.T) {
	snap := boardSnapshot()

	for _, tc := range []struct {
		name      string
		actor     string
		candidate string
		allowed   bool
		reason    DenyReason
	}{
		{"member assigns member", "u2", "u1", true, ""},
		{"owner assigns member", "u1", "u2", true, ""},
		{"unassign (empty candidate)", "u2", "", true, ""},
		{"member assigns stranger", "u2", "u3", false, DenyAssigneeNotMember},
		{"owner assigns stranger", "u1", "u3", false, DenyAssigneeNotMember},
		{"stranger assigns stranger", "u3", "u3", false, DenyAssigneeNotMember},
		{"stranger assigns member", "u3", "u2", false, DenyNotBoardMember},
	} {
		v := Decide(Request{Actor: tc.actor, Action: ActionTaskAssign, Candidate: tc.candidate}, snap)
		if v.Allowed != tc.allowed || (!tc.allowed && v.Reason != tc.reason) {
			t.Errorf("%s: got %+v, want allowed=%v reason=%q", tc.name, v, tc.allowed, tc.reason)
		}
	}
}

func TestDecide_CommentDelete_AuthorOnly(t *testing.T) {
	// Comment authored by u2. The board owner may not delete it: owner
	// status never overrides authorship.
	snap := boardSnapshot()
	snap.CommentAuthor = "u2"

	if v := Decide(Request{Actor: "u1", Action: ActionCommentDelete}, snap); v.Allowed || v.Reason != DenyNotAuthor {
		t.Errorf("board owner deleting another's comment: got %+v, want deny not_author", v)
	}
	if v := Decide(Request{Actor: "u2", Action: ActionCommentDelete}, snap); !v.Allowed {
		t.Errorf("author deleting own comment: denied (%s)", v.Reason)
	}
	if v := Decide(Request{Actor: "u3", Action: ActionCommentDelete}, snap); v.Allowed || v.Reason != DenyNotAuthor {
		t.Errorf("stranger deleting comment: got %+v, want deny not_author", v)
	}
}

func TestDecide_CommentDelete_EmptyAuthorNeverMatches(t *testing.T) {
	// A snapshot with no comment in scope must not allow deletion for an
	// empty actor.
	snap := boardSnapshot()

	if v := Decide(Request{Actor: "", Action: ActionCommentDelete}, snap); v.Allowed {
		t.Fatal("empty actor matched empty author")
	}
}

func TestDecide_Scenario_TaskLifecycle(t *testing.T) {
	// Board owned by u1, members {u1, u2}. Task assigned to u2.
	snap := boardSnapshot()
	snap.TaskAssignee = "u2"

	if v := Decide(Request{Actor: "u3", Action: ActionTaskUpdate}, snap); v.Allowed || v.Reason != DenyNotBoardMember {
		t.Errorf("u3 update: got %+v, want deny not_board_member", v)
	}
	if v := Decide(Request{Actor: "u2", Action: ActionTaskDelete}, snap); v.Allowed || v.Reason != DenyNotOwner {
		t.Errorf("u2 delete: got %+v, want deny not_owner", v)
	}
	if v := Decide(Request{Actor: "u1", Action: ActionTaskDelete}, snap); !v.Allowed {
		t.Errorf("u1 delete: denied (%s)", v.Reason)
	}
}

func TestDecide_Idempotent(t *testing.T) {
	snap := boardSnapshot()
	snap.TaskAssignee = "u2"
	snap.CommentAuthor = "u2"

	reqs := []Request{
		{Actor: "u1", Action: ActionBoardDelete},
		{Actor: "u3", Action: ActionTaskUpdate},
		{Actor: "u2", Action: ActionTaskAssign, Candidate: "u3"},
		{Actor: "u1", Action: ActionCommentDelete},
	}
	for _, req := range reqs {
		first := Decide(req, snap)
		second := Decide(req, snap)
		if first != second {
			t.Errorf("%+v: verdict changed between calls: %+v then %+v", req, first, second)
		}
	}
}

func TestVerdict_Err(t *testing.T) {
	if err := allow().Err(); err != nil {
		t.Fatalf("allow produced error: %v", err)
	}

	err := deny(DenyNotOwner).Err()
	denied, ok := err.(*DeniedError)
	if !ok {
		t.Fatalf("deny produced %T, want *DeniedError", err)
	}
	if denied.Reason != DenyNotOwner {
		t.Fatalf("reason = %q, want %q", denied.Reason, DenyNotOwner)
	}
	if denied.Error() == "" {
		t.Fatal("empty error message")
	}
}
