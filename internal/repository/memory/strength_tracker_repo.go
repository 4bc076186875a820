package memory

import (
	"bandisch/gym-tracker/internal/domain"
	"bandisch/gym-tracker/internal/repository"
	"context"
	"sync"
)

type memoryStrengthTrackerRepository struct {
	mu        sync.Mutex
	exercises map[domain.StrengthTrackerKey]*domain.StrengthTrackerExercise
}

func NewStrengthTrackerRepository() repository.StrengthTrackerRepository {
	return &memoryStrengthTrackerRepository{
		exercises: make(map[domain.StrengthTrackerKey]*domain.StrengthTrackerExercise),
	}
}

func (r *memoryStrengthTrackerRepository) Exists(ctx context.Context, key domain.StrengthTrackerKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.exercises[key]
	return ok, nil
}

func (r *memoryStrengthTrackerRepository) FindOrCreate(ctx context.Context, key domain.StrengthTrackerKey) (*domain.StrengthTrackerExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneStrengthTrackerExercise(r.findOrCreate(key)), nil
}

func (r *memoryStrengthTrackerRepository) AppendSet(ctx context.Context, key domain.StrengthTrackerKey, weight string, reps int) (*domain.StrengthTrackerExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ex := r.findOrCreate(key)
	ex.Sets = append(ex.Sets, domain.NewSet(len(ex.Sets)+1, weight, reps))
	return cloneStrengthTrackerExercise(ex), nil
}

// findOrCreate must be called with mu held.
func (r *memoryStrengthTrackerRepository) findOrCreate(key domain.StrengthTrackerKey) *domain.StrengthTrackerExercise {
	ex, ok := r.exercises[key]
	if !ok {
		ex = domain.NewStrengthTrackerExercise(key)
		r.exercises[key] = ex
	}
	return ex
}

func cloneStrengthTrackerExercise(ex *domain.StrengthTrackerExercise) *domain.StrengthTrackerExercise {
	c := *ex
	c.Sets = append(make([]domain.Set, 0, len(ex.Sets)), ex.Sets...)
	return &c
}
