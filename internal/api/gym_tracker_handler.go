package api

import (
	"bandisch/gym-tracker/internal/serialize"
	"bandisch/gym-tracker/internal/service"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GymTrackerHandler serves gym goers and their daily training sessions.
type GymTrackerHandler struct {
	gymGoerService service.GymGoerService
	authService    service.AuthService
	exportService  service.ExportService // nil when object storage is not configured
}

// NewGymTrackerHandler creates a new GymTrackerHandler. exportService may be nil.
func NewGymTrackerHandler(gymGoerService service.GymGoerService, authService service.AuthService, exportService service.ExportService) *GymTrackerHandler {
	return &GymTrackerHandler{
		gymGoerService: gymGoerService,
		authService:    authService,
		exportService:  exportService,
	}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` // not checked
}

type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

type ListGymGoersResponse struct {
	GymGoers []serialize.GymGoerSummary `json:"gymGoers"`
}

type InitTrainingSessionRequest struct {
	SessionType string `json:"sessionType"`
}

type AddExerciseRequest struct {
	SessionType  string `json:"sessionType"`
	ExerciseName string `json:"exerciseName"`
}

type SetRequest struct {
	Weight Weight `json:"weight"`
	Reps   *Reps  `json:"reps" binding:"required"`
}

type ExerciseRequest struct {
	Name string       `json:"name"`
	Sets []SetRequest `json:"sets" binding:"dive"`
}

type AddExercisesRequest struct {
	SessionType string            `json:"sessionType"`
	Exercises   []ExerciseRequest `json:"exercises" binding:"dive"`
}

type AddExerciseSetRequest struct {
	SessionType  string      `json:"sessionType"`
	ExerciseName string      `json:"exerciseName"`
	NewSet       *SetRequest `json:"newSet" binding:"required"`
}

type ExportResponse struct {
	URL       string `json:"url"`
	ObjectKey string `json:"objectKey"`
}

func (s SetRequest) toInput() service.SetInput {
	return service.SetInput{Weight: string(s.Weight), Reps: int(*s.Reps)}
}

// --- Handler Methods ---

// ListGymGoers handles GET /gym-tracker/?email=&limit=
func (h *GymTrackerHandler) ListGymGoers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid limit %q", raw))
			return
		}
		limit = n
	}

	gymGoers, err := h.gymGoerService.List(c.Request.Context(), c.Query("email"), limit)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListGymGoersResponse{GymGoers: serialize.GymGoersShallow(gymGoers)})
}

// GetGymGoer handles GET /gym-tracker/:id
func (h *GymTrackerHandler) GetGymGoer(c *gin.Context) {
	gymGoer, err := h.gymGoerService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, serialize.GymGoerFull(gymGoer))
}

// Login handles POST /gym-tracker/login. Unknown emails get a new gym goer.
func (h *GymTrackerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{AuthToken: token})
}

// InitTrainingSession handles POST /gym-tracker/init-training-session
func (h *GymTrackerHandler) InitTrainingSession(c *gin.Context) {
	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req InitTrainingSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.gymGoerService.EnsureTrainingSession(c.Request.Context(), gymGoerID, req.SessionType)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, serialize.TrainingSession(session))
}

// AddExercise handles POST /gym-tracker/add-exercise
func (h *GymTrackerHandler) AddExercise(c *gin.Context) {
	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.gymGoerService.AddExercise(c.Request.Context(), gymGoerID, req.SessionType, req.ExerciseName)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, serialize.TrainingSession(session))
}

// AddExercises handles POST /gym-tracker/add-exercises. Today's session must already exist.
func (h *GymTrackerHandler) AddExercises(c *gin.Context) {
	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req AddExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	inputs := make([]service.ExerciseInput, 0, len(req.Exercises))
	for _, ex := range req.Exercises {
		in := service.ExerciseInput{Name: ex.Name}
		for _, set := range ex.Sets {
			in.Sets = append(in.Sets, set.toInput())
		}
		inputs = append(inputs, in)
	}

	added, err := h.gymGoerService.AddExercises(c.Request.Context(), gymGoerID, req.SessionType, inputs)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, serialize.Exercises(added))
}

// AddExerciseSet handles POST /gym-tracker/add-exercise-set
func (h *GymTrackerHandler) AddExerciseSet(c *gin.Context) {
	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req AddExerciseSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.gymGoerService.AddExerciseSet(c.Request.Context(), gymGoerID, req.SessionType, req.ExerciseName, req.NewSet.toInput())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, serialize.Exercise(exercise))
}

// ExportTrainingHistory handles GET /gym-tracker/export
func (h *GymTrackerHandler) ExportTrainingHistory(c *gin.Context) {
	if h.exportService == nil {
		abortWithError(c, http.StatusNotFound, "Export is not configured")
		return
	}

	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	export, err := h.exportService.ExportTrainingHistory(c.Request.Context(), gymGoerID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExportResponse{URL: export.URL, ObjectKey: export.ObjectKey})
}
