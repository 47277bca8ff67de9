package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to create a new comment
// @Description Request body for commenting on a subject; userName is optional
type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required"`
	UserName *string `json:"userName,omitempty"`
}

// CommentResponse represents a single comment
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentListResponse wraps the comment list for a subject, newest first
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}
