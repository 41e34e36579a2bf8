package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"devstudio/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type NewProject struct {
	Title        string
	Description  *string
	ImageURL     *string
	ProjectURL   *string
	MediaType    models.MediaType
	DisplayOrder int
}

// UpdateProject holds the optional fields of a partial update. Nil fields are
// left untouched.
type UpdateProject struct {
	Title        *string
	Description  *string
	ImageURL     *string
	ProjectURL   *string
	MediaType    *models.MediaType
	IsActive     *bool
	DisplayOrder *int
}

func (r *ProjectRepository) Create(ctx context.Context, input NewProject) (*models.Project, error) {
	project := models.Project{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		ProjectURL:   input.ProjectURL,
		MediaType:    input.MediaType,
		IsActive:     true,
		DisplayOrder: input.DisplayOrder,
	}
	if project.MediaType == "" {
		project.MediaType = models.MediaTypeImage
	}
	if err := r.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}

// GetAll returns every portfolio project in presentation order.
func (r *ProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.WithContext(ctx).Order("display_order ASC").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetActive returns the projects shown on the public portfolio page.
func (r *ProjectRepository) GetActive(ctx context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list active projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id uint, input UpdateProject) (*models.Project, error) {
	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.ProjectURL != nil {
		updates["project_url"] = *input.ProjectURL
	}
	if input.MediaType != nil {
		updates["media_type"] = *input.MediaType
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.DisplayOrder != nil {
		updates["display_order"] = *input.DisplayOrder
	}
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	res := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Delete removes a project and reports whether a row was actually deleted.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete project: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
