package issue

import (
	"fmt"
	"time"

	vo "tracker/internal/domain/issue/value_objects"
	"tracker/internal/shared/biztime"
)

// Issue belongs to exactly one project and has exactly one reporter, fixed
// at creation. The assignee is optional. New issues always start OPEN;
// callers cannot set the status at creation.
type Issue struct {
	id          uint
	title       string
	description string
	status      vo.Status
	priority    vo.Priority
	projectID   uint
	reporterID  uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewIssue(
	title string,
	description string,
	priority vo.Priority,
	projectID uint,
	reporterID uint,
	assigneeID *uint,
) (*Issue, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	now := biztime.NowUTC()
	return &Issue{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		projectID:   projectID,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructIssue(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	projectID uint,
	reporterID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	return &Issue{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		projectID:   projectID,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) Description() string {
	return i.description
}

func (i *Issue) Status() vo.Status {
	return i.status
}

func (i *Issue) Priority() vo.Priority {
	return i.priority
}

func (i *Issue) ProjectID() uint {
	return i.projectID
}

func (i *Issue) ReporterID() uint {
	return i.reporterID
}

func (i *Issue) AssigneeID() *uint {
	return i.assigneeID
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Issue) UpdatedAt() time.Time {
	return i.updatedAt
}

// UpdateDetails replaces title and description; priority changes only when
// one is supplied. Status, project, and reporter stay untouched.
func (i *Issue) UpdateDetails(title, description string, priority *vo.Priority) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if priority != nil {
		if !priority.IsValid() {
			return fmt.Errorf("invalid priority")
		}
		i.priority = *priority
	}
	i.title = title
	i.description = description
	i.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus moves the issue to the given status. Any valid status may
// move to any other.
func (i *Issue) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status")
	}
	i.status = newStatus
	i.updatedAt = biztime.NowUTC()
	return nil
}

// Assign sets the assignee; nil unassigns.
func (i *Issue) Assign(assigneeID *uint) {
	i.assigneeID = assigneeID
	i.updatedAt = biztime.NowUTC()
}

// CanModify is the permission rule for issue mutations: the acting user
// must be an admin, the reporter, or the current assignee.
func (i *Issue) CanModify(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	if i.reporterID == userID {
		return true
	}
	return i.assigneeID != nil && *i.assigneeID == userID
}
