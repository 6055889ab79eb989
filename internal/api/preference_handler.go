package api

import (
	"net/http"

	"alcyxob/fittracker/internal/service"
	"alcyxob/fittracker/internal/units"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PreferenceHandler holds the preference service dependency.
type PreferenceHandler struct {
	preferenceService service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// --- DTOs for API (Data Transfer Objects) ---

// PreferencesResponse bundles every user preference.
type PreferencesResponse struct {
	Unit        units.Unit `json:"unit"`
	RestSeconds int        `json:"restSeconds"`
}

// SetUnitRequest defines the expected JSON for switching display units.
type SetUnitRequest struct {
	Unit string `json:"unit" binding:"required,oneof=kg lb"`
}

// SetRestSecondsRequest defines the expected JSON for the rest timer.
type SetRestSecondsRequest struct {
	Seconds int `json:"seconds" binding:"required,gt=0"`
}

// --- Handler Methods ---

// GetPreferences returns the current display unit and rest-timer length.
// GET /api/v1/preferences
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	unit, err := h.preferenceService.Unit(ctx)
	if err != nil {
		log.Errorf("get unit preference: %s", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to read preferences.")
		return
	}
	restSeconds, err := h.preferenceService.RestSeconds(ctx)
	if err != nil {
		log.Errorf("get rest seconds preference: %s", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to read preferences.")
		return
	}

	c.JSON(http.StatusOK, PreferencesResponse{Unit: unit, RestSeconds: restSeconds})
}

// SetUnit stores the display unit.
// PUT /api/v1/preferences/unit
func (h *PreferenceHandler) SetUnit(c *gin.Context) {
	var req SetUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.preferenceService.SetUnit(c.Request.Context(), units.Unit(req.Unit)); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to store unit preference.")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetRestSeconds stores the rest-timer length.
// PUT /api/v1/preferences/rest-seconds
func (h *PreferenceHandler) SetRestSeconds(c *gin.Context) {
	var req SetRestSecondsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.preferenceService.SetRestSeconds(c.Request.Context(), req.Seconds); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to store rest timer preference.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetPreferences restores the default unit and rest-timer length.
// DELETE /api/v1/preferences
func (h *PreferenceHandler) ResetPreferences(c *gin.Context) {
	if err := h.preferenceService.Reset(c.Request.Context()); err != nil {
		log.Errorf("reset preferences: %s", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to reset preferences.")
		return
	}
	c.Status(http.StatusNoContent)
}
