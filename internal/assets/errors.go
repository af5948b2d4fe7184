package assets

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every NotFoundError.
var ErrNotFound = errors.New("asset not found")

// NotFoundError reports an asset that could not be resolved.
type NotFoundError struct {
	Source Source
	Err    error // underlying cause, may be nil
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("asset not found: %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("asset not found: %s", e.Source)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
