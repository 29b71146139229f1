package dto

import (
	"time"

	"github.com/google/uuid"

	"scopelock-api/internal/domain"
)

// CreateFeatureRequest represents the request to create a new feature
type CreateFeatureRequest struct {
	Title  string               `json:"title" binding:"required,min=1,max=255" example:"Implement export to CSV"`
	Status domain.FeatureStatus `json:"status" binding:"omitempty,oneof=planned in_progress done" example:"planned"`
}

// UpdateFeatureRequest represents the request to update a feature.
// Status may move from any value to any other value.
type UpdateFeatureRequest struct {
	Title  *string               `json:"title" binding:"omitempty,min=1,max=255" example:"Implement export to CSV v2"`
	Status *domain.FeatureStatus `json:"status" binding:"omitempty,oneof=planned in_progress done" example:"in_progress"`
}

// FeatureResponse represents a feature
type FeatureResponse struct {
	ID        uuid.UUID            `json:"featureId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	ProjectID uuid.UUID            `json:"projectId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title     string               `json:"title" example:"Implement export to CSV"`
	Status    domain.FeatureStatus `json:"status" example:"planned"`
	CreatedAt time.Time            `json:"createdAt" example:"2026-01-15T10:30:00Z"`
	UpdatedAt time.Time            `json:"updatedAt" example:"2026-01-15T14:20:00Z"`
}
