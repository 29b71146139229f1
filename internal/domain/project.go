package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a user's project with a configured open-feature limit
type Project struct {
	BaseModel
	OwnerID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_projects_owner_id" json:"owner_id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Deadline     *time.Time `gorm:"type:timestamp" json:"deadline,omitempty"`
	FeatureLimit int        `gorm:"not null;default:1" json:"feature_limit"`
	Features     []Feature  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"features,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
