package issue

import (
	"tracker/internal/application/issue/usecases"
	sharedAuth "tracker/internal/shared/auth"
)

type CreateIssueRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=10000"`
	Priority    string `json:"priority"`
	AssigneeID  *uint  `json:"assignee_id"`
}

func (r *CreateIssueRequest) ToCommand(actor sharedAuth.Actor, projectID uint) usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		Actor:       actor,
		ProjectID:   projectID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		AssigneeID:  r.AssigneeID,
	}
}

type UpdateIssueRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=10000"`
	Priority    *string `json:"priority"`
}

func (r *UpdateIssueRequest) ToCommand(actor sharedAuth.Actor, issueID uint) usecases.UpdateIssueCommand {
	return usecases.UpdateIssueCommand{
		Actor:       actor,
		IssueID:     issueID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ChangeAssigneeRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}
