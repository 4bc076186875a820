package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GymGoer is the aggregate root for a person's training history.
// Sessions are embedded and kept in creation order.
type GymGoer struct {
	ID                      primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	Email                   string                   `bson:"email" json:"email"` // Unique
	TrainingSessions        []TrainingSession        `bson:"trainingSessions" json:"trainingSessions"`
	StrengthTrackerPrograms []StrengthTrackerProgram `bson:"strengthTrackerPrograms,omitempty" json:"strengthTrackerPrograms,omitempty"`
}

// NewGymGoer returns a gym goer with an empty session list.
// The slice is non-nil so it is stored as an empty array rather than null.
func NewGymGoer(email string) *GymGoer {
	return &GymGoer{
		ID:               primitive.NewObjectID(),
		Email:            email,
		TrainingSessions: []TrainingSession{},
	}
}

// FindTrainingSession returns the first session of the given type whose date falls inside day.
func (g *GymGoer) FindTrainingSession(sessionType string, day Day) (int, *TrainingSession) {
	for i := range g.TrainingSessions {
		s := &g.TrainingSessions[i]
		if s.SessionType == sessionType && day.Contains(s.SessionDate) {
			return i, s
		}
	}
	return -1, nil
}

// FindProgram returns the index of the registered strength tracker program, or -1.
func (g *GymGoer) FindProgram(programID string) int {
	for i, p := range g.StrengthTrackerPrograms {
		if p.ProgramID == programID {
			return i
		}
	}
	return -1
}

// StrengthTrackerProgram is metadata about a strength tracker program a gym goer follows.
type StrengthTrackerProgram struct {
	ProgramID   string    `bson:"programId" json:"programId"`
	ProgramName string    `bson:"programName" json:"programName"`
	DateStarted time.Time `bson:"dateStarted" json:"dateStarted"`
}
