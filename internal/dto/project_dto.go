package dto

import (
	"time"

	"github.com/google/uuid"

	"scopelock-api/internal/domain"
)

// CreateProjectRequest represents the request to create a new project.
// featureLimit is the maximum number of simultaneously open features and is
// immutable after creation.
type CreateProjectRequest struct {
	Name         string     `json:"name" binding:"required,min=2,max=100" example:"Q1 2026 Product Launch"`
	Deadline     *time.Time `json:"deadline,omitempty" example:"2026-03-31T23:59:59Z"`
	FeatureLimit int        `json:"featureLimit" binding:"required,min=1" example:"5"`
}

// UpdateProjectRequest represents the request to update a project.
// All fields are optional; the feature limit has no update path.
type UpdateProjectRequest struct {
	Name     *string    `json:"name" binding:"omitempty,min=2,max=100" example:"Q1 2026 Product Launch - Updated"`
	Deadline *time.Time `json:"deadline,omitempty" example:"2026-04-15T23:59:59Z"`
}

// ProjectResponse represents a project with its derived status and feature counts
type ProjectResponse struct {
	ID            uuid.UUID            `json:"projectId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	OwnerID       uuid.UUID            `json:"ownerId" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	Name          string               `json:"name" example:"Q1 2026 Product Launch"`
	Deadline      *time.Time           `json:"deadline,omitempty" example:"2026-03-31T23:59:59Z"`
	FeatureLimit  int                  `json:"featureLimit" example:"5"`
	Status        domain.ProjectStatus `json:"status" example:"In Progress"`
	OpenFeatures  int                  `json:"openFeatures" example:"2"`
	TotalFeatures int                  `json:"totalFeatures" example:"4"`
	CreatedAt     time.Time            `json:"createdAt" example:"2026-01-15T10:30:00Z"`
	UpdatedAt     time.Time            `json:"updatedAt" example:"2026-01-15T14:20:00Z"`
}

// ProjectDetailResponse represents a project together with its feature list
type ProjectDetailResponse struct {
	ProjectResponse
	Features []FeatureResponse `json:"features"`
}
