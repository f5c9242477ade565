package reconcile

import (
	"errors"
	"fmt"
)

// ErrEmptyRequired is raised when a required artifact has no versions at all.
var ErrEmptyRequired = errors.New("required artifact list is empty")

// FatalError aborts a rebuild; it carries the artifact and generation it
// was raised for.
type FatalError struct {
	Source     string
	Generation int
	Err        error
}

func (e *FatalError) Error() string {
	if e.Generation > 0 {
		return fmt.Sprintf("%s gen%d: %v", e.Source, e.Generation, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
