package usecases

import (
	"context"

	"tracker/internal/domain/issue"
	"tracker/internal/domain/project"
	"tracker/internal/shared/logger"
)

type mockProjectRepository struct {
	CreateFunc     func(ctx context.Context, p *project.Project) error
	UpdateFunc     func(ctx context.Context, p *project.Project) error
	DeleteFunc     func(ctx context.Context, id uint) error
	FindByIDFunc   func(ctx context.Context, id uint) (*project.Project, error)
	FindAllFunc    func(ctx context.Context) ([]*project.Project, error)
	ExistsByIDFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) FindAll(ctx context.Context) ([]*project.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

type mockIssueRepository struct {
	CreateFunc           func(ctx context.Context, i *issue.Issue) error
	UpdateFunc           func(ctx context.Context, i *issue.Issue) error
	DeleteFunc           func(ctx context.Context, id uint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*issue.Issue, error)
	FindByProjectIDFunc  func(ctx context.Context, projectID uint) ([]*issue.Issue, error)
	CountByProjectIDFunc func(ctx context.Context, projectID uint) (int64, error)
	ExistsByIDFunc       func(ctx context.Context, id uint) (bool, error)
}

func (m *mockIssueRepository) Create(ctx context.Context, i *issue.Issue) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockIssueRepository) FindByID(ctx context.Context, id uint) (*issue.Issue, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIssueRepository) FindByProjectID(ctx context.Context, projectID uint) ([]*issue.Issue, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockIssueRepository) CountByProjectID(ctx context.Context, projectID uint) (int64, error) {
	if m.CountByProjectIDFunc != nil {
		return m.CountByProjectIDFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *mockIssueRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any) {}
func (noopLogger) Error(msg string, args ...any) {}
func (l noopLogger) With(args ...any) logger.Interface { return l }
func (l noopLogger) Named(name string) logger.Interface { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
