package issue

import (
	"fmt"
	"time"

	"tracker/internal/shared/biztime"
)

// Comment belongs to exactly one issue and cannot outlive it; deleting an
// issue removes its comments.
type Comment struct {
	id        uint
	issueID   uint
	authorID  uint
	body      string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(issueID, authorID uint, body string) (*Comment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body cannot be empty")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("body exceeds maximum length of 5000 characters")
	}

	now := biztime.NowUTC()
	return &Comment{
		issueID:   issueID,
		authorID:  authorID,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(
	id uint,
	issueID uint,
	authorID uint,
	body string,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:        id,
		issueID:   issueID,
		authorID:  authorID,
		body:      body,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) IssueID() uint {
	return c.issueID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

// IsAuthoredBy reports whether the given user wrote this comment.
func (c *Comment) IsAuthoredBy(userID uint) bool {
	return c.authorID == userID
}
