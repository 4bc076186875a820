// Package memory holds in-process repository implementations. They honour the
// same atomicity contracts as the MongoDB ones by doing each operation under a lock.
package memory

import (
	"bandisch/gym-tracker/internal/domain"
	"bandisch/gym-tracker/internal/repository"
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryGymGoerRepository struct {
	mu      sync.Mutex
	byID    map[primitive.ObjectID]*domain.GymGoer
	byEmail map[string]primitive.ObjectID
	order   []primitive.ObjectID
}

func NewGymGoerRepository() repository.GymGoerRepository {
	return &memoryGymGoerRepository{
		byID:    make(map[primitive.ObjectID]*domain.GymGoer),
		byEmail: make(map[string]primitive.ObjectID),
	}
}

func (r *memoryGymGoerRepository) Create(ctx context.Context, gymGoer *domain.GymGoer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[gymGoer.Email]; exists {
		return repository.ErrDuplicateKey
	}
	if gymGoer.ID.IsZero() {
		gymGoer.ID = primitive.NewObjectID()
	}
	if gymGoer.TrainingSessions == nil {
		gymGoer.TrainingSessions = []domain.TrainingSession{}
	}

	r.byID[gymGoer.ID] = cloneGymGoer(gymGoer)
	r.byEmail[gymGoer.Email] = gymGoer.ID
	r.order = append(r.order, gymGoer.ID)
	return nil
}

func (r *memoryGymGoerRepository) GetByEmail(ctx context.Context, email string) (*domain.GymGoer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneGymGoer(r.byID[id]), nil
}

func (r *memoryGymGoerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.GymGoer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneGymGoer(g), nil
}

func (r *memoryGymGoerRepository) List(ctx context.Context, filter repository.GymGoerFilter) ([]domain.GymGoer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gymGoers := []domain.GymGoer{}
	for _, id := range r.order {
		g := r.byID[id]
		if filter.Email != "" && g.Email != filter.Email {
			continue
		}
		gymGoers = append(gymGoers, *cloneGymGoer(g))
		if filter.Limit > 0 && int64(len(gymGoers)) >= filter.Limit {
			break
		}
	}
	return gymGoers, nil
}

func (r *memoryGymGoerRepository) EnsureTrainingSession(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, now time.Time) (*domain.TrainingSession, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.byID[gymGoerID]
	if !ok {
		return nil, false, repository.ErrNotFound
	}
	if _, s := g.FindTrainingSession(sessionType, domain.DayOf(now)); s != nil {
		session := cloneSession(*s)
		return &session, false, nil
	}

	session := domain.NewTrainingSession(sessionType, now)
	g.TrainingSessions = append(g.TrainingSessions, cloneSession(session))
	return &session, true, nil
}

func (r *memoryGymGoerRepository) AddExercises(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, day domain.Day, exercises []domain.Exercise) ([]domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.byID[gymGoerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	_, s := g.FindTrainingSession(sessionType, day)
	if s == nil {
		return nil, repository.ErrNotFound
	}

	added := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		s.Exercises = append(s.Exercises, cloneExercise(ex))
		added = append(added, cloneExercise(ex))
	}
	return added, nil
}

func (r *memoryGymGoerRepository) AddExerciseSet(ctx context.Context, gymGoerID primitive.ObjectID, sessionType string, day domain.Day, exerciseName, weight string, reps int) (*domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.byID[gymGoerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	_, s := g.FindTrainingSession(sessionType, day)
	if s == nil {
		return nil, repository.ErrNotFound
	}
	_, ex := s.FindExercise(exerciseName)
	if ex == nil {
		return nil, repository.ErrNotFound
	}

	ex.Sets = append(ex.Sets, domain.NewSet(ex.NextSetNumber(), weight, reps))
	updated := cloneExercise(*ex)
	return &updated, nil
}

func (r *memoryGymGoerRepository) UpsertStrengthTrackerProgram(ctx context.Context, gymGoerID primitive.ObjectID, program domain.StrengthTrackerProgram) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.byID[gymGoerID]
	if !ok {
		return repository.ErrNotFound
	}
	if idx := g.FindProgram(program.ProgramID); idx >= 0 {
		g.StrengthTrackerPrograms[idx] = program
		return nil
	}
	g.StrengthTrackerPrograms = append(g.StrengthTrackerPrograms, program)
	return nil
}

func cloneGymGoer(g *domain.GymGoer) *domain.GymGoer {
	c := *g
	c.TrainingSessions = make([]domain.TrainingSession, 0, len(g.TrainingSessions))
	for _, s := range g.TrainingSessions {
		c.TrainingSessions = append(c.TrainingSessions, cloneSession(s))
	}
	if g.StrengthTrackerPrograms != nil {
		c.StrengthTrackerPrograms = append([]domain.StrengthTrackerProgram(nil), g.StrengthTrackerPrograms...)
	}
	return &c
}

func cloneSession(s domain.TrainingSession) domain.TrainingSession {
	c := s
	c.Exercises = make([]domain.Exercise, 0, len(s.Exercises))
	for _, ex := range s.Exercises {
		c.Exercises = append(c.Exercises, cloneExercise(ex))
	}
	return c
}

func cloneExercise(ex domain.Exercise) domain.Exercise {
	c := ex
	c.Sets = append(make([]domain.Set, 0, len(ex.Sets)), ex.Sets...)
	return c
}
