package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"scopelock-api/internal/domain"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc           func(ctx context.Context, project *domain.Project) error
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)
	FindByOwnerIDFunc    func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)
	UpdateFunc           func(ctx context.Context, project *domain.Project) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	PurgeDeletedFunc     func(ctx context.Context, before time.Time) (int64, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	if m.FindByOwnerIDFunc != nil {
		return m.FindByOwnerIDFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	if m.PurgeDeletedFunc != nil {
		return m.PurgeDeletedFunc(ctx, before)
	}
	return 0, nil
}

// MockFeatureRepository is a mock implementation of FeatureRepository
type MockFeatureRepository struct {
	CreateFunc           func(ctx context.Context, feature *domain.Feature) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Feature, error)
	FindByProjectIDFunc  func(ctx context.Context, projectID uuid.UUID) ([]domain.Feature, error)
	UpdateFunc           func(ctx context.Context, feature *domain.Feature) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	CountByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) (int64, error)
	PurgeDeletedFunc     func(ctx context.Context, before time.Time) (int64, error)
}

func (m *MockFeatureRepository) Create(ctx context.Context, feature *domain.Feature) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, feature)
	}
	return nil
}

func (m *MockFeatureRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFeatureRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Feature, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockFeatureRepository) Update(ctx context.Context, feature *domain.Feature) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, feature)
	}
	return nil
}

func (m *MockFeatureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockFeatureRepository) CountByProjectID(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if m.CountByProjectIDFunc != nil {
		return m.CountByProjectIDFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *MockFeatureRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	if m.PurgeDeletedFunc != nil {
		return m.PurgeDeletedFunc(ctx, before)
	}
	return 0, nil
}
