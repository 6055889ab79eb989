package api

import (
	"net/http"

	"alcyxob/fittracker/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	templateService service.TemplateService,
	sessionService service.SessionService,
	statsService service.StatsService,
	preferenceService service.PreferenceService,
) {
	templateHandler := NewTemplateHandler(templateService)
	sessionHandler := NewSessionHandler(sessionService, preferenceService)
	statsHandler := NewStatsHandler(statsService)
	preferenceHandler := NewPreferenceHandler(preferenceService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Day Template Routes ---
		templateGroup := apiV1.Group("/templates")
		{
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.POST("", templateHandler.CreateTemplate)
			templateGroup.GET("/:id", templateHandler.GetTemplate)
			templateGroup.PUT("/:id", templateHandler.UpdateTemplate)
			templateGroup.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		// --- Workout Session Routes ---
		sessionGroup := apiV1.Group("/sessions")
		{
			// committed history
			sessionGroup.GET("", sessionHandler.History)
			// logging lifecycle: start -> edit -> commit (or discard)
			sessionGroup.POST("", sessionHandler.StartSession)
			sessionGroup.GET("/drafts/:id", sessionHandler.GetDraft)
			sessionGroup.PATCH("/drafts/:id/exercises/:exerciseId", sessionHandler.UpdateDraftExercise)
			sessionGroup.POST("/drafts/:id/commit", sessionHandler.CommitSession)
			sessionGroup.DELETE("/drafts/:id", sessionHandler.DiscardDraft)
			// advisory progressive-overload hint
			sessionGroup.GET("/suggestion", sessionHandler.Suggest)
		}

		// --- Stats / Aggregation Routes ---
		statsGroup := apiV1.Group("/stats")
		{
			statsGroup.GET("/overview", statsHandler.Overview)
			statsGroup.GET("/exercises", statsHandler.ExerciseNames)
			statsGroup.GET("/exercises/series", statsHandler.ExerciseSeries)
			statsGroup.GET("/exercises/pr", statsHandler.PersonalBest)
			statsGroup.GET("/calendar/:year/:month", statsHandler.CalendarMonth)
		}

		// --- Preference Routes ---
		preferenceGroup := apiV1.Group("/preferences")
		{
			preferenceGroup.GET("", preferenceHandler.GetPreferences)
			preferenceGroup.PUT("/unit", preferenceHandler.SetUnit)
			preferenceGroup.PUT("/rest-seconds", preferenceHandler.SetRestSeconds)
			preferenceGroup.DELETE("", preferenceHandler.ResetPreferences)
		}
	}
}

func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
