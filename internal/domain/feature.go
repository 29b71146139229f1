package domain

import (
	"github.com/google/uuid"
)

// FeatureStatus represents the workflow state of a feature
type FeatureStatus string

const (
	FeatureStatusPlanned    FeatureStatus = "planned"
	FeatureStatusInProgress FeatureStatus = "in_progress"
	FeatureStatusDone       FeatureStatus = "done"
)

// IsValid reports whether the status is one of the known values
func (s FeatureStatus) IsValid() bool {
	switch s {
	case FeatureStatusPlanned, FeatureStatusInProgress, FeatureStatusDone:
		return true
	}
	return false
}

// IsOpen reports whether the feature still counts against the project's limit
func (s FeatureStatus) IsOpen() bool {
	return s != FeatureStatusDone
}

// Feature represents a unit of planned work within a project.
// Status transitions are unconstrained: any value may move to any other value.
type Feature struct {
	BaseModel
	ProjectID uuid.UUID     `gorm:"type:uuid;not null;index:idx_features_project_id" json:"project_id"`
	Title     string        `gorm:"type:varchar(255);not null" json:"title"`
	Status    FeatureStatus `gorm:"type:varchar(50);not null;default:'planned';index:idx_features_status" json:"status"`
	Project   Project       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Feature
func (Feature) TableName() string {
	return "features"
}
