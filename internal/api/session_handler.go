package api

import (
	"errors"
	"net/http"
	"strconv"

	"alcyxob/fittracker/internal/service"
	"alcyxob/fittracker/internal/units"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SessionHandler holds the session and preference service dependencies.
type SessionHandler struct {
	sessionService    service.SessionService
	preferenceService service.PreferenceService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService, preferenceService service.PreferenceService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, preferenceService: preferenceService}
}

// --- DTOs for API (Data Transfer Objects) ---

// StartSessionRequest defines the expected JSON for starting a session.
type StartSessionRequest struct {
	DayID string `json:"dayId" binding:"required"`
}

// UpdateDraftExerciseRequest is a partial edit of one draft exercise;
// absent fields are left untouched.
type UpdateDraftExerciseRequest struct {
	Weight    *float64 `json:"weight"`
	Completed *bool    `json:"completed"`
	Reps      *string  `json:"reps"`
	Notes     *string  `json:"notes"`
}

// SuggestionResponse carries the raw kg values plus strings formatted in
// the user's preferred display unit.
type SuggestionResponse struct {
	LastWeight       float64    `json:"lastWeight"`
	SuggestedWeight  float64    `json:"suggestedWeight"`
	LastDisplay      string     `json:"lastDisplay"`
	SuggestedDisplay string     `json:"suggestedDisplay"`
	Unit             units.Unit `json:"unit"`
}

// --- Handler Methods ---

// History returns the committed session history, most recent first. An
// optional ?limit=N caps the result.
// GET /api/v1/sessions
func (h *SessionHandler) History(c *gin.Context) {
	sessions := h.sessionService.History(c.Request.Context())

	// history is kept in creation order; reverse for display
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			abortWithError(c, http.StatusBadRequest, "Invalid limit parameter.")
			return
		}
		if limit < len(sessions) {
			sessions = sessions[:limit]
		}
	}
	c.JSON(http.StatusOK, sessions)
}

// StartSession builds a new draft session for a workout day.
// POST /api/v1/sessions
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	draft, err := h.sessionService.StartSession(c.Request.Context(), req.DayID)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, "Day template not found.")
			return
		}
		log.Errorf("start session for day %s: %s", req.DayID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to start session.")
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraft returns an in-progress draft.
// GET /api/v1/sessions/drafts/:id
func (h *SessionHandler) GetDraft(c *gin.Context) {
	draft, err := h.sessionService.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Draft session not found.")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateDraftExercise applies a partial edit to one exercise in a draft.
// PATCH /api/v1/sessions/drafts/:id/exercises/:exerciseId
func (h *SessionHandler) UpdateDraftExercise(c *gin.Context) {
	var req UpdateDraftExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	draft, err := h.sessionService.UpdateDraftExercise(
		c.Request.Context(),
		c.Param("id"),
		c.Param("exerciseId"),
		service.ExercisePatch{
			Weight:    req.Weight,
			Completed: req.Completed,
			Reps:      req.Reps,
			Notes:     req.Notes,
		},
	)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			abortWithError(c, http.StatusNotFound, "Draft session not found.")
			return
		}
		if errors.Is(err, service.ErrDraftExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found in draft.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update draft.")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CommitSession finalizes a draft into the history.
// POST /api/v1/sessions/drafts/:id/commit
func (h *SessionHandler) CommitSession(c *gin.Context) {
	session, err := h.sessionService.CommitSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			abortWithError(c, http.StatusNotFound, "Draft session not found.")
			return
		}
		log.Errorf("commit session %s: %s", c.Param("id"), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to commit session.")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// DiscardDraft drops an in-progress draft without committing it.
// DELETE /api/v1/sessions/drafts/:id
func (h *SessionHandler) DiscardDraft(c *gin.Context) {
	if err := h.sessionService.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusNotFound, "Draft session not found.")
		return
	}
	c.Status(http.StatusNoContent)
}

// Suggest returns the progressive-overload suggestion for one exercise of
// a day, or 204 when there is no prior data to suggest from.
// GET /api/v1/sessions/suggestion?dayId=...&exercise=...
func (h *SessionHandler) Suggest(c *gin.Context) {
	dayID := c.Query("dayId")
	exercise := c.Query("exercise")
	if dayID == "" || exercise == "" {
		abortWithError(c, http.StatusBadRequest, "Both dayId and exercise query parameters are required.")
		return
	}

	suggestion := h.sessionService.Suggest(c.Request.Context(), exercise, dayID)
	if suggestion == nil {
		c.Status(http.StatusNoContent)
		return
	}

	unit, err := h.preferenceService.Unit(c.Request.Context())
	if err != nil {
		log.Errorf("load unit preference: %s", err)
		unit = units.Kg
	}
	c.JSON(http.StatusOK, SuggestionResponse{
		LastWeight:       suggestion.LastWeight,
		SuggestedWeight:  suggestion.SuggestedWeight,
		LastDisplay:      units.FormatWeight(suggestion.LastWeight, unit),
		SuggestedDisplay: units.FormatWeight(suggestion.SuggestedWeight, unit),
		Unit:             unit,
	})
}
