package domain

import "github.com/google/uuid"

// NewGeneration returns a unique tag for one activation of an exercise.
// Deferred work scheduled during an activation carries the tag so it can be
// dropped once a different exercise is active.
func NewGeneration() string {
	return uuid.New().String()
}
