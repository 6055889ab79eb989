package api

import (
	"net/http"
	"strconv"
	"time"

	"alcyxob/fittracker/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler holds the stats service dependency.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Overview returns the dashboard summary.
// GET /api/v1/stats/overview
func (h *StatsHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.Overview(c.Request.Context()))
}

// ExerciseNames returns every exercise name that appears in history.
// GET /api/v1/stats/exercises
func (h *StatsHandler) ExerciseNames(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.ExerciseNames(c.Request.Context()))
}

// ExerciseSeries returns the per-exercise trend series.
// GET /api/v1/stats/exercises/series?name=...
func (h *StatsHandler) ExerciseSeries(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "The name query parameter is required.")
		return
	}
	c.JSON(http.StatusOK, h.statsService.ExerciseSeries(c.Request.Context(), name))
}

// PersonalBestResponse reports the best completed weight for an exercise.
type PersonalBestResponse struct {
	Exercise       string  `json:"exercise"`
	BestWeight     float64 `json:"bestWeight"`
	HasBest        bool    `json:"hasBest"`
	IsPersonalBest *bool   `json:"isPersonalBest,omitempty"`
}

// PersonalBest returns the running maximum for an exercise. With an
// optional ?weight=N it also reports whether logging that weight counts
// as a PR (ties do).
// GET /api/v1/stats/exercises/pr?name=...&weight=...
func (h *StatsHandler) PersonalBest(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "The name query parameter is required.")
		return
	}

	best, found := h.statsService.PersonalBest(c.Request.Context(), name)
	resp := PersonalBestResponse{
		Exercise:   name,
		BestWeight: best,
		HasBest:    found,
	}

	if weightStr := c.Query("weight"); weightStr != "" {
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid weight parameter.")
			return
		}
		isPR := h.statsService.IsPersonalBest(c.Request.Context(), name, weight)
		resp.IsPersonalBest = &isPR
	}

	c.JSON(http.StatusOK, resp)
}

// CalendarMonth returns the session-per-day cells of one month.
// GET /api/v1/stats/calendar/:year/:month
func (h *StatsHandler) CalendarMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid year parameter.")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		abortWithError(c, http.StatusBadRequest, "Invalid month parameter (1-12).")
		return
	}
	c.JSON(http.StatusOK, h.statsService.CalendarMonth(c.Request.Context(), year, time.Month(month)))
}
