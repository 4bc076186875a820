package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StrengthTrackerKey identifies a strength tracker exercise record.
// The triple is unique across the collection.
type StrengthTrackerKey struct {
	GymGoerID  primitive.ObjectID
	ProgramID  string
	ExerciseID string
}

// StrengthTrackerExercise records sets against a (program, exercise) pair,
// independent of calendar day.
type StrengthTrackerExercise struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GymGoerID  primitive.ObjectID `bson:"gymGoerId" json:"gymGoerId"` // Non-owning reference
	ProgramID  string             `bson:"strTrkProgramId" json:"strTrkProgramId"`
	ExerciseID string             `bson:"strTrkExerciseId" json:"strTrkExerciseId"`
	Sets       []Set              `bson:"sets" json:"sets"`
}

func NewStrengthTrackerExercise(key StrengthTrackerKey) *StrengthTrackerExercise {
	return &StrengthTrackerExercise{
		ID:         primitive.NewObjectID(),
		GymGoerID:  key.GymGoerID,
		ProgramID:  key.ProgramID,
		ExerciseID: key.ExerciseID,
		Sets:       []Set{},
	}
}

func (e *StrengthTrackerExercise) Key() StrengthTrackerKey {
	return StrengthTrackerKey{
		GymGoerID:  e.GymGoerID,
		ProgramID:  e.ProgramID,
		ExerciseID: e.ExerciseID,
	}
}
