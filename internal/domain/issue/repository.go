package issue

import "context"

// Repository persists issues. FindByID returns (nil, nil) when the row is
// absent; the service layer decides the not-found semantics.
type Repository interface {
	Create(ctx context.Context, i *Issue) error
	Update(ctx context.Context, i *Issue) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Issue, error)
	FindByProjectID(ctx context.Context, projectID uint) ([]*Issue, error)
	CountByProjectID(ctx context.Context, projectID uint) (int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// CommentRepository persists comments. FindByIssueID returns comments
// ordered by creation time ascending.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id uint) error
	DeleteByIssueID(ctx context.Context, issueID uint) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	FindByIssueID(ctx context.Context, issueID uint) ([]*Comment, error)
	CountByIssueID(ctx context.Context, issueID uint) (int64, error)
}
