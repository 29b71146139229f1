package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scopelock-api/internal/domain"
	"scopelock-api/internal/dto"
	"scopelock-api/internal/metrics"
	"scopelock-api/internal/repository"
	"scopelock-api/internal/response"
)

// FeatureService defines the interface for feature business logic
type FeatureService interface {
	CreateFeature(ctx context.Context, projectID, userID uuid.UUID, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	ListFeatures(ctx context.Context, projectID, userID uuid.UUID) ([]*dto.FeatureResponse, error)
	UpdateFeature(ctx context.Context, featureID, userID uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	DeleteFeature(ctx context.Context, featureID, userID uuid.UUID) error
}

// featureServiceImpl is the implementation of FeatureService
type featureServiceImpl struct {
	projectRepo repository.ProjectRepository
	featureRepo repository.FeatureRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewFeatureService creates a new instance of FeatureService
func NewFeatureService(projectRepo repository.ProjectRepository, featureRepo repository.FeatureRepository, m *metrics.Metrics, logger *zap.Logger) FeatureService {
	return &featureServiceImpl{
		projectRepo: projectRepo,
		featureRepo: featureRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateFeature creates a new feature in a project. Creation is rejected with
// SCOPE_LOCKED once the open-feature count has reached the project's limit,
// evaluated against the current feature set at submission time. The check is a
// read followed by a write with no serialization between them; two concurrent
// submissions can both pass it.
func (s *featureServiceImpl) CreateFeature(ctx context.Context, projectID, userID uuid.UUID, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
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

	if domain.IsScopeLocked(features, project.FeatureLimit) {
		if s.metrics != nil {
			s.metrics.IncrementScopeLockRejected()
		}
		s.logger.Info("Feature creation rejected by scope lock",
			zap.String("project_id", project.ID.String()),
			zap.Int("open_features", domain.OpenFeatureCount(features)),
			zap.Int("feature_limit", project.FeatureLimit),
		)
		return nil, response.NewScopeLockedError(
			"Open feature limit reached for this project",
			"Complete or delete an open feature before adding a new one",
		)
	}

	status := req.Status
	if status == "" {
		status = domain.FeatureStatusPlanned
	}

	feature := &domain.Feature{
		ProjectID: project.ID,
		Title:     req.Title,
		Status:    status,
	}

	if err := s.featureRepo.Create(ctx, feature); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create feature", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementFeatureCreated()
	}

	resp := toFeatureResponse(feature)
	return &resp, nil
}

// ListFeatures retrieves all features for a project, newest first
func (s *featureServiceImpl) ListFeatures(ctx context.Context, projectID, userID uuid.UUID) ([]*dto.FeatureResponse, error) {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	features, err := s.featureRepo.FindByProjectID(ctx, project.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch features", err.Error())
	}

	responses := make([]*dto.FeatureResponse, 0, len(features))
	for i := range features {
		resp := toFeatureResponse(&features[i])
		responses = append(responses, &resp)
	}

	return responses, nil
}

// UpdateFeature updates a feature's title and/or status. Any status may move
// to any other status; there is no enforced state machine.
func (s *featureServiceImpl) UpdateFeature(ctx context.Context, featureID, userID uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	feature, err := s.findOwnedFeature(ctx, featureID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		feature.Title = *req.Title
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, response.NewValidationError("Invalid feature status", "")
		}
		feature.Status = *req.Status
	}

	if err := s.featureRepo.Update(ctx, feature); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update feature", err.Error())
	}

	resp := toFeatureResponse(feature)
	return &resp, nil
}

// DeleteFeature deletes a feature
func (s *featureServiceImpl) DeleteFeature(ctx context.Context, featureID, userID uuid.UUID) error {
	feature, err := s.findOwnedFeature(ctx, featureID, userID)
	if err != nil {
		return err
	}

	if err := s.featureRepo.Delete(ctx, feature.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete feature", err.Error())
	}

	return nil
}

// findOwnedFeature loads a feature and verifies the caller owns its project.
// Features of foreign projects surface as not found, matching the owner
// scoping of all reads.
func (s *featureServiceImpl) findOwnedFeature(ctx context.Context, featureID, userID uuid.UUID) (*domain.Feature, error) {
	feature, err := s.featureRepo.FindByID(ctx, featureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Feature not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch feature", err.Error())
	}

	if _, err := s.projectRepo.FindByIDAndOwner(ctx, feature.ProjectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Feature not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	return feature, nil
}

// toFeatureResponse converts domain.Feature to dto.FeatureResponse
func toFeatureResponse(feature *domain.Feature) dto.FeatureResponse {
	return dto.FeatureResponse{
		ID:        feature.ID,
		ProjectID: feature.ProjectID,
		Title:     feature.Title,
		Status:    feature.Status,
		CreatedAt: feature.CreatedAt,
		UpdatedAt: feature.UpdatedAt,
	}
}
