package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scopelock-api/internal/dto"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func stringPtr(s string) *string {
	return &s
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	CreateProjectFunc func(ctx context.Context, req *dto.CreateProjectRequest, userID uuid.UUID) (*dto.ProjectResponse, error)
	ListProjectsFunc  func(ctx context.Context, userID uuid.UUID) ([]*dto.ProjectResponse, error)
	GetProjectFunc    func(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectDetailResponse, error)
	UpdateProjectFunc func(ctx context.Context, projectID, userID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProjectFunc func(ctx context.Context, projectID, userID uuid.UUID) error
}

func (m *MockProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest, userID uuid.UUID) (*dto.ProjectResponse, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, req, userID)
	}
	return nil, nil
}

func (m *MockProjectService) ListProjects(ctx context.Context, userID uuid.UUID) ([]*dto.ProjectResponse, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectDetailResponse, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *MockProjectService) UpdateProject(ctx context.Context, projectID, userID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, projectID, userID, req)
	}
	return nil, nil
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID, userID)
	}
	return nil
}

// MockFeatureService is a mock implementation of FeatureService
type MockFeatureService struct {
	CreateFeatureFunc func(ctx context.Context, projectID, userID uuid.UUID, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	ListFeaturesFunc  func(ctx context.Context, projectID, userID uuid.UUID) ([]*dto.FeatureResponse, error)
	UpdateFeatureFunc func(ctx context.Context, featureID, userID uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	DeleteFeatureFunc func(ctx context.Context, featureID, userID uuid.UUID) error
}

func (m *MockFeatureService) CreateFeature(ctx context.Context, projectID, userID uuid.UUID, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	if m.CreateFeatureFunc != nil {
		return m.CreateFeatureFunc(ctx, projectID, userID, req)
	}
	return nil, nil
}

func (m *MockFeatureService) ListFeatures(ctx context.Context, projectID, userID uuid.UUID) ([]*dto.FeatureResponse, error) {
	if m.ListFeaturesFunc != nil {
		return m.ListFeaturesFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *MockFeatureService) UpdateFeature(ctx context.Context, featureID, userID uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	if m.UpdateFeatureFunc != nil {
		return m.UpdateFeatureFunc(ctx, featureID, userID, req)
	}
	return nil, nil
}

func (m *MockFeatureService) DeleteFeature(ctx context.Context, featureID, userID uuid.UUID) error {
	if m.DeleteFeatureFunc != nil {
		return m.DeleteFeatureFunc(ctx, featureID, userID)
	}
	return nil
}
