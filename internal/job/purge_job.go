package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"scopelock-api/internal/metrics"
	"scopelock-api/internal/repository"
)

// PurgeJob hard-deletes soft-deleted projects and features once they have
// been deleted for longer than the retention window
type PurgeJob struct {
	projectRepo repository.ProjectRepository
	featureRepo repository.FeatureRepository
	retention   time.Duration
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewPurgeJob creates a new PurgeJob instance
func NewPurgeJob(
	projectRepo repository.ProjectRepository,
	featureRepo repository.FeatureRepository,
	retention time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) *PurgeJob {
	return &PurgeJob{
		projectRepo: projectRepo,
		featureRepo: featureRepo,
		retention:   retention,
		metrics:     m,
		logger:      logger,
	}
}

// Run executes the purge job. Features are purged before projects so feature
// rows never outlive their project rows.
func (j *PurgeJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	j.logger.Info("Starting purge job for soft-deleted records",
		zap.Time("cutoff", cutoff),
	)

	featureCount, err := j.featureRepo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to purge deleted features",
			zap.Error(err),
		)
	} else if featureCount > 0 {
		if j.metrics != nil {
			j.metrics.AddPurgedRecords("features", featureCount)
		}
	}

	projectCount, err := j.projectRepo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to purge deleted projects",
			zap.Error(err),
		)
	} else if projectCount > 0 {
		if j.metrics != nil {
			j.metrics.AddPurgedRecords("projects", projectCount)
		}
	}

	j.logger.Info("Purge job completed",
		zap.Int64("features_purged", featureCount),
		zap.Int64("projects_purged", projectCount),
	)
}
