package domain

import (
	"errors"
	"time"
)

var ErrBoardNotFound = errors.New("board not found")

// Board is the top-level aggregate. The owner is fixed at creation and is
// always present in MemberIDs; only the owner may change the member set.
type Board struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	OwnerID   string    `json:"owner_id"`
	MemberIDs []string  `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMember reports whether userID is the owner or an explicit member.
func (b *Board) HasMember(userID string) bool {
	if userID == b.OwnerID {
		return true
	}
	for _, id := range b.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// BoardStats carries the denormalized counters shown in board list views.
type BoardStats struct {
	MemberCount       int `json:"member_count"`
	TaskCount         int `json:"ticket_count"`
	TodoCount         int `json:"tasks_to_do_count"`
	HighPriorityCount int `json:"tasks_high_prio_count"`
}
