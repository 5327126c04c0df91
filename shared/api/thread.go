package api

// Request DTOs shared by the Forum API client and the view surface

type CreateThreadRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category" validate:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type VoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=up down neutral"`
}
