package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)

// DatasetError reports a dataset that could neither be loaded nor built. It matches
// ErrDatasetUnavailable and unwraps to the storage cause, so dataset.IsCorrupt still applies.
type DatasetError struct {
	Dataset string
	Err     error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("dataset %s unavailable: %v", e.Dataset, e.Err)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

func (e *DatasetError) Is(target error) bool {
	return target == ErrDatasetUnavailable
}
