package engine

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicatePlayer = errors.New("duplicate player")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrHopLimit        = errors.New("move chain exceeded hop limit")
	ErrUnknownCommand  = errors.New("unknown command")
)

// PlayerError ties ErrDuplicatePlayer or ErrPlayerNotFound to the offending player
type PlayerError[Pl any] struct {
	Player Pl
	Err    error
}

func (e *PlayerError[Pl]) Error() string {
	return fmt.Sprintf("%v: %v", e.Player, e.Err)
}

func (e *PlayerError[Pl]) Unwrap() error {
	return e.Err
}

// StateError wraps a failure reported by the State implementation
type StateError struct {
	Err error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("player state: %v", e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

func stateError(err error) error {
	return &StateError{Err: err}
}
