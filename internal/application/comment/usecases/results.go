package usecases

import (
	domainIssue "tracker/internal/domain/issue"
)

// CommentResult is the comment representation returned to the transport layer.
type CommentResult struct {
	ID        uint   `json:"id"`
	IssueID   uint   `json:"issue_id"`
	AuthorID  uint   `json:"author_id"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func newCommentResult(c *domainIssue.Comment) CommentResult {
	return CommentResult{
		ID:        c.ID(),
		IssueID:   c.IssueID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}
