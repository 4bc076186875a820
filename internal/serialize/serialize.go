// Package serialize projects domain aggregates into their external JSON shape.
// Storage identifiers become "id" at every level and slices are never nil,
// so an empty list encodes as [] rather than null.
package serialize

import (
	"bandisch/gym-tracker/internal/domain"
	"time"
)

type GymGoerSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type GymGoerResponse struct {
	ID                      string                    `json:"id"`
	Email                   string                    `json:"email"`
	TrainingSessions        []TrainingSessionResponse `json:"trainingSessions"`
	StrengthTrackerPrograms []ProgramResponse         `json:"strengthTrackerPrograms,omitempty"`
}

type TrainingSessionResponse struct {
	ID          string             `json:"id"`
	SessionType string             `json:"sessionType"`
	SessionDate time.Time          `json:"sessionDate"`
	Exercises   []ExerciseResponse `json:"exercises"`
}

type ExerciseResponse struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Sets []SetResponse `json:"sets"`
}

type SetResponse struct {
	ID        string `json:"id"`
	SetNumber int    `json:"setNumber"`
	Weight    string `json:"weight"`
	Reps      int    `json:"reps"`
}

type ProgramResponse struct {
	ProgramID   string    `json:"programId"`
	ProgramName string    `json:"programName"`
	DateStarted time.Time `json:"dateStarted"`
}

type StrengthTrackerExerciseResponse struct {
	ID               string        `json:"id"`
	GymGoerID        string        `json:"gymGoerId"`
	StrTrkProgramID  string        `json:"strTrkProgramId"`
	StrTrkExerciseID string        `json:"strTrkExerciseId"`
	Sets             []SetResponse `json:"sets"`
}

// GymGoerShallow is the listing projection: identity and email only.
func GymGoerShallow(g *domain.GymGoer) GymGoerSummary {
	return GymGoerSummary{
		ID:    g.ID.Hex(),
		Email: g.Email,
	}
}

func GymGoersShallow(gymGoers []domain.GymGoer) []GymGoerSummary {
	resp := make([]GymGoerSummary, 0, len(gymGoers))
	for i := range gymGoers {
		resp = append(resp, GymGoerShallow(&gymGoers[i]))
	}
	return resp
}

// GymGoerFull includes the whole session tree. Programs are only present once registered.
func GymGoerFull(g *domain.GymGoer) GymGoerResponse {
	resp := GymGoerResponse{
		ID:               g.ID.Hex(),
		Email:            g.Email,
		TrainingSessions: make([]TrainingSessionResponse, 0, len(g.TrainingSessions)),
	}
	for i := range g.TrainingSessions {
		resp.TrainingSessions = append(resp.TrainingSessions, TrainingSession(&g.TrainingSessions[i]))
	}
	if len(g.StrengthTrackerPrograms) > 0 {
		resp.StrengthTrackerPrograms = make([]ProgramResponse, 0, len(g.StrengthTrackerPrograms))
		for _, p := range g.StrengthTrackerPrograms {
			resp.StrengthTrackerPrograms = append(resp.StrengthTrackerPrograms, ProgramResponse{
				ProgramID:   p.ProgramID,
				ProgramName: p.ProgramName,
				DateStarted: p.DateStarted,
			})
		}
	}
	return resp
}

func TrainingSession(s *domain.TrainingSession) TrainingSessionResponse {
	return TrainingSessionResponse{
		ID:          s.ID.Hex(),
		SessionType: s.SessionType,
		SessionDate: s.SessionDate,
		Exercises:   Exercises(s.Exercises),
	}
}

func Exercises(exercises []domain.Exercise) []ExerciseResponse {
	resp := make([]ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		resp = append(resp, Exercise(&exercises[i]))
	}
	return resp
}

func Exercise(e *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:   e.ID.Hex(),
		Name: e.Name,
		Sets: sets(e.Sets),
	}
}

func StrengthTrackerExercise(e *domain.StrengthTrackerExercise) StrengthTrackerExerciseResponse {
	return StrengthTrackerExerciseResponse{
		ID:               e.ID.Hex(),
		GymGoerID:        e.GymGoerID.Hex(),
		StrTrkProgramID:  e.ProgramID,
		StrTrkExerciseID: e.ExerciseID,
		Sets:             sets(e.Sets),
	}
}

func sets(in []domain.Set) []SetResponse {
	resp := make([]SetResponse, 0, len(in))
	for _, s := range in {
		resp = append(resp, SetResponse{
			ID:        s.ID.Hex(),
			SetNumber: s.SetNumber,
			Weight:    s.Weight,
			Reps:      s.Reps,
		})
	}
	return resp
}
