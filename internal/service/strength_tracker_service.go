package service

import (
	"bandisch/gym-tracker/internal/domain"
	"bandisch/gym-tracker/internal/metrics"
	"bandisch/gym-tracker/internal/repository"
	"context"
)

//go:generate mockgen -source=$GOFILE -destination=../api/strength_tracker_service_mocks_test.go -package=api_test

// StrengthTrackerService records sets against (program, exercise) pairs,
// independent of calendar day.
type StrengthTrackerService interface {
	IsExistingExercise(ctx context.Context, gymGoerID, programID, exerciseID string) (bool, error)
	// AddExercise is an idempotent find-or-create. Existing sets are never touched.
	AddExercise(ctx context.Context, gymGoerID, programID, exerciseID string) (*domain.StrengthTrackerExercise, error)
	// AddExerciseSet find-or-creates the exercise and appends the set in one storage operation.
	AddExerciseSet(ctx context.Context, gymGoerID, programID, exerciseID string, set SetInput) (*domain.StrengthTrackerExercise, error)
}

type strengthTrackerService struct {
	strengthTrackerRepo repository.StrengthTrackerRepository
	metrics             *metrics.Manager
}

// NewStrengthTrackerService creates a new instance of strengthTrackerService.
func NewStrengthTrackerService(strengthTrackerRepo repository.StrengthTrackerRepository, metricsManager *metrics.Manager) StrengthTrackerService {
	return &strengthTrackerService{
		strengthTrackerRepo: strengthTrackerRepo,
		metrics:             metricsManager,
	}
}

func parseStrengthTrackerKey(gymGoerID, programID, exerciseID string) (domain.StrengthTrackerKey, error) {
	id, err := ParseGymGoerID(gymGoerID)
	if err != nil {
		return domain.StrengthTrackerKey{}, err
	}
	if programID == "" {
		return domain.StrengthTrackerKey{}, validationError("program id is required")
	}
	if exerciseID == "" {
		return domain.StrengthTrackerKey{}, validationError("exercise id is required")
	}
	return domain.StrengthTrackerKey{GymGoerID: id, ProgramID: programID, ExerciseID: exerciseID}, nil
}

func (s *strengthTrackerService) IsExistingExercise(ctx context.Context, gymGoerID, programID, exerciseID string) (bool, error) {
	key, err := parseStrengthTrackerKey(gymGoerID, programID, exerciseID)
	if err != nil {
		return false, err
	}

	exists, err := s.strengthTrackerRepo.Exists(ctx, key)
	if err != nil {
		return false, mapRepoError(err, "strength tracker exercise")
	}
	return exists, nil
}

func (s *strengthTrackerService) AddExercise(ctx context.Context, gymGoerID, programID, exerciseID string) (*domain.StrengthTrackerExercise, error) {
	key, err := parseStrengthTrackerKey(gymGoerID, programID, exerciseID)
	if err != nil {
		return nil, err
	}

	exercise, err := s.strengthTrackerRepo.FindOrCreate(ctx, key)
	if err != nil {
		return nil, mapRepoError(err, "strength tracker exercise")
	}
	return exercise, nil
}

func (s *strengthTrackerService) AddExerciseSet(ctx context.Context, gymGoerID, programID, exerciseID string, set SetInput) (*domain.StrengthTrackerExercise, error) {
	key, err := parseStrengthTrackerKey(gymGoerID, programID, exerciseID)
	if err != nil {
		return nil, err
	}
	if err := set.validate(); err != nil {
		return nil, err
	}

	exercise, err := s.strengthTrackerRepo.AppendSet(ctx, key, set.Weight, set.Reps)
	if err != nil {
		return nil, mapRepoError(err, "strength tracker exercise")
	}

	s.metrics.CounterSetsLogged.WithLabelValues("strength_tracker").Inc()
	return exercise, nil
}
