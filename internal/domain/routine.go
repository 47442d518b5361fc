package domain

import "fmt"

// Routine is an ordered, immutable list of exercises.
type Routine struct {
	exercises []Exercise
	index     map[string]int
}

// NewRoutine validates the exercises and builds a routine from them.
func NewRoutine(exercises []Exercise) (*Routine, error) {
	if len(exercises) == 0 {
		return nil, ErrEmptyRoutine
	}

	r := &Routine{
		exercises: make([]Exercise, len(exercises)),
		index:     make(map[string]int, len(exercises)),
	}
	for i, ex := range exercises {
		if err := ex.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.index[ex.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateExercise, ex.ID)
		}
		ex.Instructions = append([]string(nil), ex.Instructions...)
		r.exercises[i] = ex
		r.index[ex.ID] = i
	}
	return r, nil
}

// Len returns the number of exercises.
func (r *Routine) Len() int {
	return len(r.exercises)
}

// Last returns the index of the final exercise.
func (r *Routine) Last() int {
	return len(r.exercises) - 1
}

// At returns the exercise at position i.
func (r *Routine) At(i int) (Exercise, bool) {
	if i < 0 || i >= len(r.exercises) {
		return Exercise{}, false
	}
	return r.exercises[i], true
}

// IndexOf returns the position of the exercise with the given ID, or -1.
func (r *Routine) IndexOf(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Exercises returns a copy of the ordered exercise list.
func (r *Routine) Exercises() []Exercise {
	out := make([]Exercise, len(r.exercises))
	copy(out, r.exercises)
	return out
}
