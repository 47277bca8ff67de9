package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workspace-listing-api/internal/domain"
)

// LocationRepository defines the interface for location data access
type LocationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
}

// locationRepositoryImpl is the GORM implementation of LocationRepository
type locationRepositoryImpl struct {
	db *gorm.DB
}

// NewLocationRepository creates a new instance of LocationRepository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepositoryImpl{db: db}
}

// FindByID finds a location by its ID
func (r *locationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	var location domain.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}
