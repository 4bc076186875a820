package api

import (
	"bandisch/gym-tracker/internal/serialize"
	"bandisch/gym-tracker/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type StrengthTrackerHandler struct {
	strengthTrackerService service.StrengthTrackerService
	gymGoerService         service.GymGoerService
}

func NewStrengthTrackerHandler(strengthTrackerService service.StrengthTrackerService, gymGoerService service.GymGoerService) *StrengthTrackerHandler {
	return &StrengthTrackerHandler{
		strengthTrackerService: strengthTrackerService,
		gymGoerService:         gymGoerService,
	}
}

type UpsertProgramRequest struct {
	ProgramName string `json:"programName"`
	DateStarted string `json:"dateStarted"` // RFC 3339 or YYYY-MM-DD
}

type StrengthTrackerExerciseRequest struct {
	ProgramID  string `json:"programId"`
	ExerciseID string `json:"exerciseId"`
}

type StrengthTrackerSetRequest struct {
	ProgramID  string `json:"programId"`
	ExerciseID string `json:"exerciseId"`
	Weight     Weight `json:"weight"`
	Reps       *Reps  `json:"reps" binding:"required"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

func parseDateStarted(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("dateStarted is required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateStarted %q is not a date", raw)
	}
	return t, nil
}

// UpsertProgram handles PUT /strength-tracker/programs/:programId
func (h *StrengthTrackerHandler) UpsertProgram(c *gin.Context) {
	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req UpsertProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	dateStarted, err := parseDateStarted(req.DateStarted)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.gymGoerService.UpsertStrengthTrackerProgram(c.Request.Context(), gymGoerID, c.Param("programId"), req.ProgramName, dateStarted)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

// AddExercise handles POST /strength-tracker/exercises
func (h *StrengthTrackerHandler) AddExercise(c *gin.Context) {
	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req StrengthTrackerExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.strengthTrackerService.AddExercise(c.Request.Context(), gymGoerID, req.ProgramID, req.ExerciseID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serialize.StrengthTrackerExercise(exercise))
}

// ExerciseExists handles GET /strength-tracker/exercises/exists?programId=&exerciseId=
func (h *StrengthTrackerHandler) ExerciseExists(c *gin.Context) {
	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	exists, err := h.strengthTrackerService.IsExistingExercise(c.Request.Context(), gymGoerID, c.Query("programId"), c.Query("exerciseId"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}

// AddExerciseSet handles POST /strength-tracker/exercises/sets
func (h *StrengthTrackerHandler) AddExerciseSet(c *gin.Context) {
	gymGoerID, err := getGymGoerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req StrengthTrackerSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	set := service.SetInput{Weight: string(req.Weight), Reps: int(*req.Reps)}
	exercise, err := h.strengthTrackerService.AddExerciseSet(c.Request.Context(), gymGoerID, req.ProgramID, req.ExerciseID, set)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serialize.StrengthTrackerExercise(exercise))
}
