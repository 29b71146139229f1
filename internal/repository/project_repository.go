package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scopelock-api/internal/domain"
)

// ProjectRepository defines the interface for project data access.
// All reads are scoped by the owning user; a project belonging to another
// user is indistinguishable from a missing one.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create creates a new project
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return err
	}
	return nil
}

// FindByIDAndOwner finds a project by ID, scoped to its owner
func (r *projectRepositoryImpl) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByOwnerID finds all projects for an owner, newest first
func (r *projectRepositoryImpl) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a project and its features
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&domain.Feature{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Project{}, id).Error; err != nil {
			return err
		}
		return nil
	})
}

// PurgeDeleted hard-deletes projects soft-deleted before the given time
func (r *projectRepositoryImpl) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&domain.Project{})
	return result.RowsAffected, result.Error
}
