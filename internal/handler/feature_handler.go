package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scopelock-api/internal/dto"
	"scopelock-api/internal/response"
	"scopelock-api/internal/service"
)

// FeatureHandler handles feature endpoints
type FeatureHandler struct {
	featureService service.FeatureService
}

// NewFeatureHandler creates a new FeatureHandler
func NewFeatureHandler(featureService service.FeatureService) *FeatureHandler {
	return &FeatureHandler{featureService: featureService}
}

// CreateFeature creates a feature in a project. Returns 409 SCOPE_LOCKED when
// the project's open-feature limit has been reached.
func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := getUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return
	}

	feature, err := h.featureService.CreateFeature(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, feature)
}

// ListFeatures lists a project's features, newest first
func (h *FeatureHandler) ListFeatures(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	userID, ok := getUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return
	}

	features, err := h.featureService.ListFeatures(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, features)
}

// UpdateFeature updates a feature's title and/or status
func (h *FeatureHandler) UpdateFeature(c *gin.Context) {
	featureID, err := uuid.Parse(c.Param("featureId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid feature ID")
		return
	}

	var req dto.UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := getUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return
	}

	feature, err := h.featureService.UpdateFeature(c.Request.Context(), featureID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, feature)
}

// DeleteFeature deletes a feature
func (h *FeatureHandler) DeleteFeature(c *gin.Context) {
	featureID, err := uuid.Parse(c.Param("featureId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid feature ID")
		return
	}

	userID, ok := getUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return
	}

	if err := h.featureService.DeleteFeature(c.Request.Context(), featureID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Feature deleted successfully"})
}
