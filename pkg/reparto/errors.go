package reparto

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates a dataset file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates a dataset file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrMissingColumn indicates a dataset lacks a required header.
var ErrMissingColumn = errors.New("missing column")

// LoadError represents an error while loading a dataset.
type LoadError struct {
	Dataset Dataset
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in dataset %q (%s): %v", e.Dataset, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(dataset Dataset, path string, err error) *LoadError {
	return &LoadError{
		Dataset: dataset,
		Path:    path,
		Err:     err,
	}
}
