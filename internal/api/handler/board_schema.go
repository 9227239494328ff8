package handler

// errorResponse documents the error envelope produced by the central error
// handler; handlers never build it themselves.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createBoardRequest struct {
	Title   string   `json:"title" validate:"required"`
	Members []string `json:"members"`
}

// updateBoardRequest is a partial update; absent fields stay unchanged.
// Sending members replaces the whole member set (owner always retained).
type updateBoardRequest struct {
	Title   *string   `json:"title" validate:"omitempty,min=1"`
	Members *[]string `json:"members"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
}

type boardSummaryResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	OwnerID            string `json:"owner_id"`
	MemberCount        int    `json:"member_count"`
	TicketCount        int    `json:"ticket_count"`
	TasksToDoCount     int    `json:"tasks_to_do_count"`
	TasksHighPrioCount int    `json:"tasks_high_prio_count"`
}

type boardDetailResponse struct {
	boardSummaryResponse
	Members []userResponse `json:"members"`
	Tasks   []taskResponse `json:"tasks"`
}
