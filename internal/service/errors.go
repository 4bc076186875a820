package service

import (
	"bandisch/gym-tracker/internal/repository"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error kinds returned by the services. Specific errors wrap one of these,
// so callers match with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrConflict           = errors.New("concurrent modification")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// mapRepoError translates repository errors into service error kinds.
// what names the entity for not found and duplicate messages.
func mapRepoError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFoundError("%s", what)
	case errors.Is(err, repository.ErrDuplicateKey):
		return fmt.Errorf("%w: %s already exists", ErrDuplicateKey, what)
	case errors.Is(err, repository.ErrStorageUnavailable):
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	case errors.Is(err, repository.ErrConcurrentUpdate):
		return fmt.Errorf("%w: %s was modified concurrently, retry", ErrConflict, what)
	default:
		return err
	}
}

// ParseGymGoerID converts a hex identifier into an ObjectID.
func ParseGymGoerID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, validationError("gym goer id is required")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, validationError("malformed gym goer id %q", id)
	}
	return oid, nil
}

// SetInput is a set as supplied by a caller, before a setNumber is assigned.
type SetInput struct {
	Weight string
	Reps   int
}

func (s SetInput) validate() error {
	if s.Weight == "" {
		return validationError("set weight is required")
	}
	if s.Reps < 0 {
		return validationError("set reps must not be negative")
	}
	return nil
}
