package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scopelock-api/internal/domain"
)

type mockProjectRepo struct {
	purgeDeletedFunc func(ctx context.Context, before time.Time) (int64, error)
}

func (m *mockProjectRepo) Create(ctx context.Context, project *domain.Project) error { return nil }
func (m *mockProjectRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	return nil, nil
}
func (m *mockProjectRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	return nil, nil
}
func (m *mockProjectRepo) Update(ctx context.Context, project *domain.Project) error { return nil }
func (m *mockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (m *mockProjectRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	if m.purgeDeletedFunc != nil {
		return m.purgeDeletedFunc(ctx, before)
	}
	return 0, nil
}

type mockFeatureRepo struct {
	purgeDeletedFunc func(ctx context.Context, before time.Time) (int64, error)
}

func (m *mockFeatureRepo) Create(ctx context.Context, feature *domain.Feature) error { return nil }
func (m *mockFeatureRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error) {
	return nil, nil
}
func (m *mockFeatureRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Feature, error) {
	return nil, nil
}
func (m *mockFeatureRepo) Update(ctx context.Context, feature *domain.Feature) error { return nil }
func (m *mockFeatureRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (m *mockFeatureRepo) CountByProjectID(ctx context.Context, projectID uuid.UUID) (int64, error) {
	return 0, nil
}
func (m *mockFeatureRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	if m.purgeDeletedFunc != nil {
		return m.purgeDeletedFunc(ctx, before)
	}
	return 0, nil
}

func TestPurgeJob_Run(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	retention := 30 * 24 * time.Hour

	var featureCutoff, projectCutoff time.Time
	var featurePurgedAt, projectPurgedAt time.Time

	featureRepo := &mockFeatureRepo{
		purgeDeletedFunc: func(ctx context.Context, before time.Time) (int64, error) {
			featureCutoff = before
			featurePurgedAt = time.Now()
			return 4, nil
		},
	}
	projectRepo := &mockProjectRepo{
		purgeDeletedFunc: func(ctx context.Context, before time.Time) (int64, error) {
			projectCutoff = before
			projectPurgedAt = time.Now()
			return 2, nil
		},
	}

	job := NewPurgeJob(projectRepo, featureRepo, retention, nil, logger)
	job.Run()

	if featureCutoff.IsZero() || projectCutoff.IsZero() {
		t.Fatal("expected both repositories to be purged")
	}

	// Features must be purged before projects
	if !featurePurgedAt.Before(projectPurgedAt) && !featurePurgedAt.Equal(projectPurgedAt) {
		t.Error("features should be purged before projects")
	}

	// Cutoff is roughly now minus retention
	wantCutoff := time.Now().UTC().Add(-retention)
	if diff := wantCutoff.Sub(featureCutoff); diff < -time.Minute || diff > time.Minute {
		t.Errorf("feature cutoff = %v, want about %v", featureCutoff, wantCutoff)
	}
}

func TestPurgeJob_Run_ProjectPurgeStillRunsAfterFeatureError(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	projectPurged := false
	featureRepo := &mockFeatureRepo{
		purgeDeletedFunc: func(ctx context.Context, before time.Time) (int64, error) {
			return 0, errors.New("lock timeout")
		},
	}
	projectRepo := &mockProjectRepo{
		purgeDeletedFunc: func(ctx context.Context, before time.Time) (int64, error) {
			projectPurged = true
			return 0, nil
		},
	}

	job := NewPurgeJob(projectRepo, featureRepo, time.Hour, nil, logger)
	job.Run()

	if !projectPurged {
		t.Error("a feature purge failure must not stop the project purge")
	}
}
