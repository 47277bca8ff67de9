package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workspace-listing-api/internal/domain"
)

// WorkspaceRepository defines the interface for workspace data access.
// Workspaces are written by the admin flows only, so this surface is
// read-only.
type WorkspaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	FindByLocationID(ctx context.Context, locationID uuid.UUID) ([]*domain.Workspace, error)
	Count(ctx context.Context) (int64, error)
}

// workspaceRepositoryImpl is the GORM implementation of WorkspaceRepository
type workspaceRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new instance of WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepositoryImpl{db: db}
}

// FindByID finds a workspace by its ID
func (r *workspaceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	var workspace domain.Workspace
	if err := r.db.WithContext(ctx).First(&workspace, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

// FindByLocationID finds all workspaces listed under a location
func (r *workspaceRepositoryImpl) FindByLocationID(ctx context.Context, locationID uuid.UUID) ([]*domain.Workspace, error) {
	var workspaces []*domain.Workspace
	if err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("created_at DESC").
		Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

// Count returns the total number of workspaces
func (r *workspaceRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Workspace{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
