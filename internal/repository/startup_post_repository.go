package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workspace-listing-api/internal/domain"
)

// StartupPostRepository defines the interface for startup-board data access
type StartupPostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.StartupPost, error)
	FindAll(ctx context.Context) ([]*domain.StartupPost, error)
}

// startupPostRepositoryImpl is the GORM implementation of StartupPostRepository
type startupPostRepositoryImpl struct {
	db *gorm.DB
}

// NewStartupPostRepository creates a new instance of StartupPostRepository
func NewStartupPostRepository(db *gorm.DB) StartupPostRepository {
	return &startupPostRepositoryImpl{db: db}
}

// FindByID finds a startup post by its ID
func (r *startupPostRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.StartupPost, error) {
	var post domain.StartupPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll returns all startup posts, newest first
func (r *startupPostRepositoryImpl) FindAll(ctx context.Context) ([]*domain.StartupPost, error) {
	var posts []*domain.StartupPost
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
