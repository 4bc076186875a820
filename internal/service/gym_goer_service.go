package service

import (
	"bandisch/gym-tracker/internal/domain"
	"bandisch/gym-tracker/internal/metrics"
	"bandisch/gym-tracker/internal/repository"
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// ExerciseInput is an exercise to append, optionally with sets already performed.
type ExerciseInput struct {
	Name string
	Sets []SetInput
}

//go:generate mockgen -source=$GOFILE -destination=../api/gym_goer_service_mocks_test.go -package=api_test

// GymGoerService owns gym goers and their embedded training sessions.
// All session lookups use the server-local calendar day of the service clock.
type GymGoerService interface {
	FindByEmail(ctx context.Context, email string) (*domain.GymGoer, error) // nil, nil on a miss
	Create(ctx context.Context, email string) (*domain.GymGoer, error)
	GetByID(ctx context.Context, gymGoerID string) (*domain.GymGoer, error)
	List(ctx context.Context, email string, limit int) ([]domain.GymGoer, error)

	EnsureTrainingSession(ctx context.Context, gymGoerID, sessionType string) (*domain.TrainingSession, error)
	AddExercises(ctx context.Context, gymGoerID, sessionType string, exercises []ExerciseInput) ([]domain.Exercise, error)
	// AddExercise ensures today's session, appends one exercise and returns the whole session.
	AddExercise(ctx context.Context, gymGoerID, sessionType, exerciseName string) (*domain.TrainingSession, error)
	AddExerciseSet(ctx context.Context, gymGoerID, sessionType, exerciseName string, set SetInput) (*domain.Exercise, error)

	UpsertStrengthTrackerProgram(ctx context.Context, gymGoerID, programID, programName string, dateStarted time.Time) error
}

type gymGoerService struct {
	gymGoerRepo repository.GymGoerRepository
	metrics     *metrics.Manager
	now         func() time.Time
}

// NewGymGoerService creates a new instance of gymGoerService.
func NewGymGoerService(gymGoerRepo repository.GymGoerRepository, metricsManager *metrics.Manager) GymGoerService {
	return &gymGoerService{
		gymGoerRepo: gymGoerRepo,
		metrics:     metricsManager,
		now:         time.Now,
	}
}

func (s *gymGoerService) FindByEmail(ctx context.Context, email string) (*domain.GymGoer, error) {
	if email == "" {
		return nil, validationError("email is required")
	}

	gymGoer, err := s.gymGoerRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapRepoError(err, "gym goer")
	}
	return gymGoer, nil
}

func (s *gymGoerService) Create(ctx context.Context, email string) (*domain.GymGoer, error) {
	if email == "" {
		return nil, validationError("email is required")
	}

	gymGoer := domain.NewGymGoer(email)
	if err := s.gymGoerRepo.Create(ctx, gymGoer); err != nil {
		return nil, mapRepoError(err, "gym goer with email "+email)
	}

	log.WithField("gymGoerId", gymGoer.ID.Hex()).Info("gym goer created")
	return gymGoer, nil
}

func (s *gymGoerService) GetByID(ctx context.Context, gymGoerID string) (*domain.GymGoer, error) {
	id, err := ParseGymGoerID(gymGoerID)
	if err != nil {
		return nil, err
	}

	gymGoer, err := s.gymGoerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "gym goer "+gymGoerID)
	}
	return gymGoer, nil
}

// List returns gym goers in creation order. A zero limit means DefaultListLimit.
func (s *gymGoerService) List(ctx context.Context, email string, limit int) ([]domain.GymGoer, error) {
	if limit < 0 || limit > MaxListLimit {
		return nil, validationError("limit must be between 1 and %d", MaxListLimit)
	}
	if limit == 0 {
		limit = DefaultListLimit
	}

	gymGoers, err := s.gymGoerRepo.List(ctx, repository.GymGoerFilter{Email: email, Limit: int64(limit)})
	if err != nil {
		return nil, mapRepoError(err, "gym goers")
	}
	return gymGoers, nil
}

func (s *gymGoerService) EnsureTrainingSession(ctx context.Context, gymGoerID, sessionType string) (*domain.TrainingSession, error) {
	id, err := ParseGymGoerID(gymGoerID)
	if err != nil {
		return nil, err
	}
	if sessionType == "" {
		return nil, validationError("session type is required")
	}

	session, created, err := s.gymGoerRepo.EnsureTrainingSession(ctx, id, sessionType, s.now())
	if err != nil {
		return nil, mapRepoError(err, "gym goer "+gymGoerID)
	}

	if created {
		s.metrics.CounterSessionsCreated.WithLabelValues(sessionType).Inc()
		log.WithFields(log.Fields{
			"gymGoerId":   gymGoerID,
			"sessionType": sessionType,
			"sessionId":   session.ID.Hex(),
		}).Debug("training session created")
	}
	return session, nil
}

func (s *gymGoerService) AddExercises(ctx context.Context, gymGoerID, sessionType string, exercises []ExerciseInput) ([]domain.Exercise, error) {
	id, err := ParseGymGoerID(gymGoerID)
	if err != nil {
		return nil, err
	}
	if sessionType == "" {
		return nil, validationError("session type is required")
	}
	if len(exercises) == 0 {
		return nil, validationError("at least one exercise is required")
	}

	toAdd := make([]domain.Exercise, 0, len(exercises))
	for i, in := range exercises {
		if in.Name == "" {
			return nil, validationError("exercise %d: name is required", i)
		}
		sets := make([]domain.Set, 0, len(in.Sets))
		for _, set := range in.Sets {
			if err := set.validate(); err != nil {
				return nil, err
			}
			sets = append(sets, domain.Set{Weight: set.Weight, Reps: set.Reps})
		}
		toAdd = append(toAdd, domain.NewExercise(in.Name, sets))
	}

	added, err := s.gymGoerRepo.AddExercises(ctx, id, sessionType, domain.DayOf(s.now()), toAdd)
	if err != nil {
		return nil, mapRepoError(err, "training session "+sessionType+" for today")
	}

	s.metrics.CounterExercisesAdded.Add(float64(len(added)))
	return added, nil
}

func (s *gymGoerService) AddExercise(ctx context.Context, gymGoerID, sessionType, exerciseName string) (*domain.TrainingSession, error) {
	if exerciseName == "" {
		return nil, validationError("exercise name is required")
	}

	session, err := s.EnsureTrainingSession(ctx, gymGoerID, sessionType)
	if err != nil {
		return nil, err
	}
	if _, err := s.AddExercises(ctx, gymGoerID, sessionType, []ExerciseInput{{Name: exerciseName}}); err != nil {
		return nil, err
	}

	gymGoer, err := s.GetByID(ctx, gymGoerID)
	if err != nil {
		return nil, err
	}
	for i := range gymGoer.TrainingSessions {
		if gymGoer.TrainingSessions[i].ID == session.ID {
			return &gymGoer.TrainingSessions[i], nil
		}
	}
	return nil, notFoundError("training session %s", session.ID.Hex())
}

func (s *gymGoerService) AddExerciseSet(ctx context.Context, gymGoerID, sessionType, exerciseName string, set SetInput) (*domain.Exercise, error) {
	id, err := ParseGymGoerID(gymGoerID)
	if err != nil {
		return nil, err
	}
	if sessionType == "" {
		return nil, validationError("session type is required")
	}
	if exerciseName == "" {
		return nil, validationError("exercise name is required")
	}
	if err := set.validate(); err != nil {
		return nil, err
	}

	exercise, err := s.gymGoerRepo.AddExerciseSet(ctx, id, sessionType, domain.DayOf(s.now()), exerciseName, set.Weight, set.Reps)
	if err != nil {
		return nil, mapRepoError(err, "exercise "+exerciseName+" in today's "+sessionType+" session")
	}

	s.metrics.CounterSetsLogged.WithLabelValues("session").Inc()
	return exercise, nil
}

func (s *gymGoerService) UpsertStrengthTrackerProgram(ctx context.Context, gymGoerID, programID, programName string, dateStarted time.Time) error {
	id, err := ParseGymGoerID(gymGoerID)
	if err != nil {
		return err
	}
	if programID == "" {
		return validationError("program id is required")
	}
	if programName == "" {
		return validationError("program name is required")
	}

	program := domain.StrengthTrackerProgram{
		ProgramID:   programID,
		ProgramName: programName,
		DateStarted: dateStarted,
	}
	if err := s.gymGoerRepo.UpsertStrengthTrackerProgram(ctx, id, program); err != nil {
		return mapRepoError(err, "gym goer "+gymGoerID)
	}
	return nil
}
