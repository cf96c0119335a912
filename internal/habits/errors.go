package habits

import (
	"errors"
	"fmt"

	appErrors "cadence/internal/errors"
)

var (
	// ErrNotFound indicates the store has no habit with the requested ID.
	ErrNotFound = errors.New("habits: habit not found")
)

func notFoundError(id string) error {
	return appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("habit %s not found", id), ErrNotFound)
}

func storageError(op string, err error) error {
	return appErrors.New(appErrors.CodeStorageFailed, fmt.Sprintf("%s: %v", op, err), err)
}

func invalidDataError(reason string) error {
	return appErrors.New(appErrors.CodeInvalidHabitData, reason, nil)
}
