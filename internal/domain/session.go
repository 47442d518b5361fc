package domain

// Counter selects one of the two manual counters.
type Counter int

const (
	CounterReps Counter = iota
	CounterSets
)

// String returns the counter name.
func (c Counter) String() string {
	if c == CounterSets {
		return "sets"
	}
	return "reps"
}

// SessionState is the mutable runtime state of one routine session.
// It is not safe for concurrent use; the owner serializes access.
type SessionState struct {
	CurrentIndex   int
	RepsDone       int
	SetsDone       int
	HoldLoopActive bool
	Theme          Theme

	completed map[string]struct{}
	order     []string
}

// NewSessionState returns a session at the first exercise with nothing completed.
func NewSessionState() *SessionState {
	return &SessionState{
		Theme:     DefaultTheme,
		completed: make(map[string]struct{}),
	}
}

// MarkCompleted adds id to the completed set. It returns false if id was
// already there.
func (s *SessionState) MarkCompleted(id string) bool {
	if _, ok := s.completed[id]; ok {
		return false
	}
	s.completed[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// IsCompleted reports whether id is in the completed set.
func (s *SessionState) IsCompleted(id string) bool {
	_, ok := s.completed[id]
	return ok
}

// CompletedIDs returns completed ids in the order they were added.
func (s *SessionState) CompletedIDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// CompletedCount returns the size of the completed set.
func (s *SessionState) CompletedCount() int {
	return len(s.order)
}

// ClearCompleted empties the completed set.
func (s *SessionState) ClearCompleted() {
	s.completed = make(map[string]struct{})
	s.order = nil
}

// Count returns the value of counter c.
func (s *SessionState) Count(c Counter) int {
	if c == CounterSets {
		return s.SetsDone
	}
	return s.RepsDone
}

// SetCount sets counter c, clamped at zero.
func (s *SessionState) SetCount(c Counter, v int) {
	if v < 0 {
		v = 0
	}
	if c == CounterSets {
		s.SetsDone = v
		return
	}
	s.RepsDone = v
}

// Increment adds one to counter c and returns the new value.
func (s *SessionState) Increment(c Counter) int {
	s.SetCount(c, s.Count(c)+1)
	return s.Count(c)
}

// Decrement subtracts one from counter c, never going below zero.
func (s *SessionState) Decrement(c Counter) int {
	s.SetCount(c, s.Count(c)-1)
	return s.Count(c)
}

// ResetCounters zeroes both counters.
func (s *SessionState) ResetCounters() {
	s.RepsDone = 0
	s.SetsDone = 0
}

// Progress returns the persisted form of the session.
func (s *SessionState) Progress() Progress {
	return Progress{
		Completed:    s.CompletedIDs(),
		CurrentIndex: s.CurrentIndex,
	}
}

// ApplyProgress replaces the completed set and index with p, clamping the
// index into a routine of n exercises.
func (s *SessionState) ApplyProgress(p Progress, n int) {
	s.ClearCompleted()
	for _, id := range p.Completed {
		s.MarkCompleted(id)
	}
	s.CurrentIndex = p.Clamp(n).CurrentIndex
}
