package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tracker/internal/domain/issue"
	"tracker/internal/infrastructure/persistence/mappers"
	"tracker/internal/infrastructure/persistence/models"
	db "tracker/internal/shared/db"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Create(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"assignee_id": model.AssigneeID,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *IssueRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.IssueModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("issue not found")
	}
	return nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) FindByProjectID(ctx context.Context, projectID uint) ([]*issue.Issue, error) {
	var issueModels []models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("project_id = ?", projectID).Order("id ASC").Find(&issueModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, 0, len(issueModels))
	for i := range issueModels {
		iss, err := r.mapper.ToDomain(&issueModels[i])
		if err != nil {
			return nil, err
		}
		issues = append(issues, iss)
	}

	return issues, nil
}

func (r *IssueRepository) CountByProjectID(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.IssueModel{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count issues: %w", err)
	}
	return count, nil
}

func (r *IssueRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.IssueModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check issue existence: %w", err)
	}
	return count > 0, nil
}
