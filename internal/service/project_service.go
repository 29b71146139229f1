package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scopelock-api/internal/domain"
	"scopelock-api/internal/dto"
	"scopelock-api/internal/metrics"
	"scopelock-api/internal/repository"
	"scopelock-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest, userID uuid.UUID) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]*dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectDetailResponse, error)
	UpdateProject(ctx context.Context, projectID, userID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	featureRepo repository.FeatureRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, featureRepo repository.FeatureRepository, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		featureRepo: featureRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateProject creates a new project owned by the calling user
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest, userID uuid.UUID) (*dto.ProjectResponse, error) {
	project := &domain.Project{
		OwnerID:      userID,
		Name:         req.Name,
		Deadline:     req.Deadline,
		FeatureLimit: domain.NormalizeFeatureLimit(req.FeatureLimit),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}

	return s.toProjectResponse(project, nil), nil
}

// ListProjects retrieves all projects for the calling user with their derived
// status, sorted by status precedence (Blocked, In Progress, Planning,
// Completed). The sort is stable over the underlying newest-first order.
func (s *projectServiceImpl) ListProjects(ctx context.Context, userID uuid.UUID) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	if len(projects) == 0 {
		return []*dto.ProjectResponse{}, nil
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		if project == nil {
			continue
		}

		features, err := s.featureRepo.FindByProjectID(ctx, project.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch features", err.Error())
		}

		responses = append(responses, s.toProjectResponse(project, features))
	}

	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].Status.Precedence() < responses[j].Status.Precedence()
	})

	return responses, nil
}

// GetProject retrieves a project with its features and derived status
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectDetailResponse, error) {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	features, err := s.featureRepo.FindByProjectID(ctx, project.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch features", err.Error())
	}

	featureResponses := make([]dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		featureResponses = append(featureResponses, toFeatureResponse(&f))
	}

	return &dto.ProjectDetailResponse{
		ProjectResponse: *s.toProjectResponse(project, features),
		Features:        featureResponses,
	}, nil
}

// UpdateProject updates a project's name and deadline. The feature limit is
// immutable and has no update path.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID, userID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	features, err := s.featureRepo.FindByProjectID(ctx, project.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch features", err.Error())
	}

	return s.toProjectResponse(project, features), nil
}

// DeleteProject deletes a project and its features
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if err := s.projectRepo.Delete(ctx, project.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}

	s.logger.Info("Project deleted",
		zap.String("project_id", project.ID.String()),
		zap.String("owner_id", userID.String()),
	)

	return nil
}

// toProjectResponse converts domain.Project to dto.ProjectResponse, deriving
// the status from the given feature set on every call
func (s *projectServiceImpl) toProjectResponse(project *domain.Project, features []domain.Feature) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:            project.ID,
		OwnerID:       project.OwnerID,
		Name:          project.Name,
		Deadline:      project.Deadline,
		FeatureLimit:  project.FeatureLimit,
		Status:        domain.ClassifyProject(features, project.FeatureLimit),
		OpenFeatures:  domain.OpenFeatureCount(features),
		TotalFeatures: len(features),
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}
