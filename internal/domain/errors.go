package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrEmptyInput       = errors.New("could not parse any steps from the input")
	ErrMissingName      = errors.New("please enter a recipe name and steps")
	ErrNoActiveDuration = errors.New("step has no active duration")
	ErrNoMoreSteps      = errors.New("no more steps in recipe")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrRatingFinalized  = errors.New("session rating is finalized")
	ErrIndexOutOfRange  = errors.New("index out of range")
)
