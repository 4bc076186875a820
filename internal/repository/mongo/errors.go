package mongo

import (
	"bandisch/gym-tracker/internal/repository"
	"context"
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// storageError classifies driver errors into repository errors.
// Transport failures become ErrStorageUnavailable and keep the driver error in the message.
func storageError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicateKey
	case mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		stderrors.Is(err, context.DeadlineExceeded),
		stderrors.Is(err, mongo.ErrClientDisconnected):
		return errors.Wrap(unavailable{cause: err}, op)
	default:
		return errors.Wrap(err, op)
	}
}

type unavailable struct {
	cause error
}

func (u unavailable) Error() string {
	return fmt.Sprintf("%s: %v", repository.ErrStorageUnavailable, u.cause)
}

func (u unavailable) Is(target error) bool {
	return target == repository.ErrStorageUnavailable
}

func (u unavailable) Unwrap() error {
	return u.cause
}
