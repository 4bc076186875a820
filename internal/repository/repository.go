package repository

import (
	"bandisch/gym-tracker/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound           = RepositoryError("not found")
	ErrDuplicateKey       = RepositoryError("duplicate key")
	ErrStorageUnavailable = RepositoryError("storage unavailable")
	// ErrConcurrentUpdate is returned when a conditional update keeps losing to concurrent writers.
	ErrConcurrentUpdate = RepositoryError("concurrent update")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// GymGoerFilter narrows a gym goer listing. Zero values mean no filtering.
type GymGoerFilter struct {
	Email string
	Limit int64
}

// GymGoerRepository persists GymGoer documents with their embedded sessions.
// Every mutating method is atomic for a single document.
type GymGoerRepository interface {
	Create(ctx context.Context, gymGoer *domain.GymGoer) error // ErrDuplicateKey on existing email
	GetByEmail(ctx context.Context, email string) (*domain.GymGoer, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.GymGoer, error)
	List(ctx context.Context, filter GymGoerFilter) ([]domain.GymGoer, error)

	// EnsureTrainingSession returns the session of sessionType on the day of now,
	// creating it with sessionDate=now only if none exists. Creation is a conditional
	// push so two racing callers cannot both append. created reports whether this call appended.
	EnsureTrainingSession(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, now time.Time) (session *domain.TrainingSession, created bool, err error)
	// AddExercises appends to the session of sessionType on day. ErrNotFound if the session is missing.
	AddExercises(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, day domain.Day, exercises []domain.Exercise) ([]domain.Exercise, error)
	// AddExerciseSet appends a set numbered count+1 to the first exercise named exerciseName.
	// The count check and append are a single atomic step.
	AddExerciseSet(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, day domain.Day, exerciseName, weight string, reps int) (*domain.Exercise, error)

	UpsertStrengthTrackerProgram(ctx context.Context, gymGoerID primitive.ObjectID, program domain.StrengthTrackerProgram) error
}

// StrengthTrackerRepository persists StrengthTrackerExercise records keyed by StrengthTrackerKey.
type StrengthTrackerRepository interface {
	Exists(ctx context.Context, key domain.StrengthTrackerKey) (bool, error)
	// FindOrCreate never modifies an existing record.
	FindOrCreate(ctx context.Context, key domain.StrengthTrackerKey) (*domain.StrengthTrackerExercise, error)
	// AppendSet creates the record if needed and appends a set whose number is computed by the store.
	AppendSet(ctx context.Context, key domain.StrengthTrackerKey, weight string, reps int) (*domain.StrengthTrackerExercise, error)
}
