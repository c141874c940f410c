package xidach

import (
	"errors"
	"fmt"
)

// ErrInvalidStake is returned when the stake is not a configured denomination
var ErrInvalidStake = errors.New("stake is not an allowed denomination")

// ErrInvalidState is matched by every StateError
var ErrInvalidState = errors.New("invalid round state")

// StateError is returned when an action is attempted from the wrong state
// The round is never modified when a StateError is returned.
type StateError struct {
	Action string
	State  RoundState
}

func (s *StateError) Error() string {
	return fmt.Sprintf("cannot %s from state: %s", s.Action, s.State)
}

// Is allows errors.Is(err, ErrInvalidState)
func (s *StateError) Is(target error) bool {
	return target == ErrInvalidState
}
