package usecases

import (
	"context"
	"fmt"

	domainIssue "tracker/internal/domain/issue"
	domainUser "tracker/internal/domain/user"
)

// UserSummary is the compact user representation embedded in issue results.
type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// IssueResult is the issue representation returned to the transport layer.
// CommentCount is derived at read time; it is never stored on the issue row.
type IssueResult struct {
	ID           uint         `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Status       string       `json:"status"`
	Priority     string       `json:"priority"`
	ProjectID    uint         `json:"project_id"`
	Reporter     *UserSummary `json:"reporter"`
	Assignee     *UserSummary `json:"assignee"`
	CommentCount int64        `json:"comment_count"`
	CreatedAt    int64        `json:"created_at"`
	UpdatedAt    int64        `json:"updated_at"`
}

func newUserSummary(u *domainUser.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
	}
}

// resultAssembler resolves the reporter, assignee and comment count an issue
// result needs beyond the issue row itself.
type resultAssembler struct {
	userRepo    domainUser.Repository
	commentRepo domainIssue.CommentRepository
}

func (a resultAssembler) assemble(ctx context.Context, iss *domainIssue.Issue) (*IssueResult, error) {
	reporter, err := a.userRepo.FindByID(ctx, iss.ReporterID())
	if err != nil {
		return nil, fmt.Errorf("failed to load reporter: %w", err)
	}

	var assignee *domainUser.User
	if iss.AssigneeID() != nil {
		assignee, err = a.userRepo.FindByID(ctx, *iss.AssigneeID())
		if err != nil {
			return nil, fmt.Errorf("failed to load assignee: %w", err)
		}
	}

	count, err := a.commentRepo.CountByIssueID(ctx, iss.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	return &IssueResult{
		ID:           iss.ID(),
		Title:        iss.Title(),
		Description:  iss.Description(),
		Status:       iss.Status().String(),
		Priority:     iss.Priority().String(),
		ProjectID:    iss.ProjectID(),
		Reporter:     newUserSummary(reporter),
		Assignee:     newUserSummary(assignee),
		CommentCount: count,
		CreatedAt:    iss.CreatedAt().UnixMilli(),
		UpdatedAt:    iss.UpdatedAt().UnixMilli(),
	}, nil
}
