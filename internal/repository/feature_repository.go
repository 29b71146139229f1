package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scopelock-api/internal/domain"
)

// FeatureRepository defines the interface for feature data access
type FeatureRepository interface {
	Create(ctx context.Context, feature *domain.Feature) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Feature, error)
	Update(ctx context.Context, feature *domain.Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByProjectID(ctx context.Context, projectID uuid.UUID) (int64, error)
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

// featureRepositoryImpl is the GORM implementation of FeatureRepository
type featureRepositoryImpl struct {
	db *gorm.DB
}

// NewFeatureRepository creates a new instance of FeatureRepository
func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepositoryImpl{db: db}
}

// Create creates a new feature
func (r *featureRepositoryImpl) Create(ctx context.Context, feature *domain.Feature) error {
	if err := r.db.WithContext(ctx).Create(feature).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a feature by ID
func (r *featureRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error) {
	var feature domain.Feature
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feature).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

// FindByProjectID finds all features for a project, newest first
func (r *featureRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Feature, error) {
	var features []domain.Feature
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// Update updates a feature
func (r *featureRepositoryImpl) Update(ctx context.Context, feature *domain.Feature) error {
	if err := r.db.WithContext(ctx).Save(feature).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a feature
func (r *featureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Feature{}, id).Error; err != nil {
		return err
	}
	return nil
}

// CountByProjectID counts features belonging to a project
func (r *featureRepositoryImpl) CountByProjectID(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Feature{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// PurgeDeleted hard-deletes features soft-deleted before the given time
func (r *featureRepositoryImpl) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&domain.Feature{})
	return result.RowsAffected, result.Error
}
