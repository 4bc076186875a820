package api

import (
	"bandisch/gym-tracker/internal/metrics"
	"bandisch/gym-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services groups what the routes need. Export and LoginRateLimiter may be nil.
type Services struct {
	Auth            service.AuthService
	GymGoer         service.GymGoerService
	StrengthTracker service.StrengthTrackerService
	Export          service.ExportService

	LoginRateLimiter     RequestRateLimiter
	LoginRateLimitPerMin int
}

// NewRouter builds the gin engine with the standard middleware chain and all routes.
func NewRouter(services Services, metricsManager *metrics.Manager) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		PanicRecovery(metricsManager),
		LogRequest(),
		RequestMetrics(metricsManager),
	)
	SetupRoutes(router, services)
	return router
}

func SetupRoutes(router *gin.Engine, services Services) {
	gymTrackerHandler := NewGymTrackerHandler(services.GymGoer, services.Auth, services.Export)
	strengthTrackerHandler := NewStrengthTrackerHandler(services.StrengthTracker, services.GymGoer)

	authMiddleware := AuthMiddleware(services.Auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	gymTracker := router.Group("/gym-tracker")
	{
		gymTracker.GET("/", gymTrackerHandler.ListGymGoers)
		if services.LoginRateLimiter != nil {
			gymTracker.POST("/login", RateLimit(services.LoginRateLimiter, "login", services.LoginRateLimitPerMin), gymTrackerHandler.Login)
		} else {
			gymTracker.POST("/login", gymTrackerHandler.Login)
		}

		protected := gymTracker.Group("")
		protected.Use(authMiddleware)
		protected.GET("/export", gymTrackerHandler.ExportTrainingHistory)
		protected.GET("/:id", gymTrackerHandler.GetGymGoer)
		protected.POST("/init-training-session", gymTrackerHandler.InitTrainingSession)
		protected.POST("/add-exercise", gymTrackerHandler.AddExercise)
		protected.POST("/add-exercises", gymTrackerHandler.AddExercises)
		protected.POST("/add-exercise-set", gymTrackerHandler.AddExerciseSet)
	}

	strengthTracker := router.Group("/strength-tracker")
	strengthTracker.Use(authMiddleware)
	{
		strengthTracker.PUT("/programs/:programId", strengthTrackerHandler.UpsertProgram)
		strengthTracker.POST("/exercises", strengthTrackerHandler.AddExercise)
		strengthTracker.GET("/exercises/exists", strengthTrackerHandler.ExerciseExists)
		strengthTracker.POST("/exercises/sets", strengthTrackerHandler.AddExerciseSet)
	}
}
