package api

import (
	"errors"
	"net/http"

	"alcyxob/fittracker/internal/domain"
	"alcyxob/fittracker/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler holds the template service dependency.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// --- DTOs for API (Data Transfer Objects) ---

// TemplateExerciseRequest is one exercise slot in a create/update request.
type TemplateExerciseRequest struct {
	ID   string `json:"id"` // empty on create; kept stable on update
	Name string `json:"name" binding:"required"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// SaveTemplateRequest defines the expected JSON for creating or updating a
// day template.
type SaveTemplateRequest struct {
	Name      string                    `json:"name" binding:"required"`
	Color     string                    `json:"color"`
	Exercises []TemplateExerciseRequest `json:"exercises"`
}

func (req SaveTemplateRequest) toDomainExercises() []domain.TemplateExercise {
	exercises := make([]domain.TemplateExercise, len(req.Exercises))
	for i, ex := range req.Exercises {
		exercises[i] = domain.TemplateExercise{
			ID:   ex.ID,
			Name: ex.Name,
			Sets: ex.Sets,
			Reps: ex.Reps,
		}
	}
	return exercises
}

// --- Handler Methods ---

// ListTemplates returns all day templates.
// GET /api/v1/templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.templateService.ListTemplates(c.Request.Context()))
}

// GetTemplate returns one template by ID.
// GET /api/v1/templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	template, err := h.templateService.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, "Day template not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get template.")
		return
	}
	c.JSON(http.StatusOK, template)
}

// CreateTemplate creates a new day template.
// POST /api/v1/templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	template, err := h.templateService.CreateTemplate(
		c.Request.Context(),
		req.Name,
		domain.ColorKey(req.Color),
		req.toDomainExercises(),
	)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create template: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, template)
}

// UpdateTemplate updates an existing day template in place.
// PUT /api/v1/templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	template, err := h.templateService.UpdateTemplate(
		c.Request.Context(),
		c.Param("id"),
		req.Name,
		domain.ColorKey(req.Color),
		req.toDomainExercises(),
	)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, "Day template not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update template: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteTemplate removes a day template. Historical sessions that
// reference it keep their snapshot fields and are not touched.
// DELETE /api/v1/templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	err := h.templateService.DeleteTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, "Day template not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete template: "+err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
