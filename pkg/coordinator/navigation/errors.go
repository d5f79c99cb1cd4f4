package navigation

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoNavigator is returned by a Dispatcher that was built without a Navigator.
	ErrNoNavigator = errors.New("navigation: no navigator configured")
)

// TransitionError reports that the host failed to present a destination.
type TransitionError struct {
	Destination string // Identifier of the destination
	RequestID   string // Request id the failure was logged under
	Err         error  // Underlying error
}

func (e *TransitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navigation: transition to %s: %v", e.Destination, e.Err)
	}
	return fmt.Sprintf("navigation: transition to %s", e.Destination)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// NewTransitionError creates a new transition error.
func NewTransitionError(destination, requestID string, err error) *TransitionError {
	return &TransitionError{Destination: destination, RequestID: requestID, Err: err}
}

// IsTransitionError checks if an error is a transition error.
func IsTransitionError(err error) bool {
	var transitionErr *TransitionError
	return errors.As(err, &transitionErr)
}
