package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainingSession is a daily session embedded in a GymGoer.
// There is at most one session per (gym goer, session type, day).
type TrainingSession struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	SessionType string             `bson:"sessionType" json:"sessionType"` // e.g. "chest", "legs"
	SessionDate time.Time          `bson:"sessionDate" json:"sessionDate"`
	Exercises   []Exercise         `bson:"exercises" json:"exercises"`
}

func NewTrainingSession(sessionType string, at time.Time) TrainingSession {
	return TrainingSession{
		ID:          primitive.NewObjectID(),
		SessionType: sessionType,
		SessionDate: at,
		Exercises:   []Exercise{},
	}
}

// FindExercise returns the first exercise with the given name.
func (s *TrainingSession) FindExercise(name string) (int, *Exercise) {
	for i := range s.Exercises {
		if s.Exercises[i].Name == name {
			return i, &s.Exercises[i]
		}
	}
	return -1, nil
}

// Exercise is an exercise performed in a training session.
// Names are not deduplicated: adding the same name twice yields two entries.
type Exercise struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
	Sets []Set              `bson:"sets" json:"sets"`
}

// NewExercise prepares an exercise for appending. Any supplied sets are
// renumbered 1..n in the given order.
func NewExercise(name string, sets []Set) Exercise {
	ex := Exercise{
		ID:   primitive.NewObjectID(),
		Name: name,
		Sets: make([]Set, 0, len(sets)),
	}
	for _, s := range sets {
		ex.Sets = append(ex.Sets, NewSet(len(ex.Sets)+1, s.Weight, s.Reps))
	}
	return ex
}

// NextSetNumber is the number the next appended set gets.
func (e *Exercise) NextSetNumber() int {
	return len(e.Sets) + 1
}

// Set is a single weight/reps entry logged against an exercise.
// Weight is free text and carries no unit semantics.
type Set struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	SetNumber int                `bson:"setNumber" json:"setNumber"`
	Weight    string             `bson:"weight" json:"weight"`
	Reps      int                `bson:"reps" json:"reps"`
}

func NewSet(setNumber int, weight string, reps int) Set {
	return Set{
		ID:        primitive.NewObjectID(),
		SetNumber: setNumber,
		Weight:    weight,
		Reps:      reps,
	}
}
