package domain

// Progress is what survives a restart: the completed exercise ids and the
// current position.
type Progress struct {
	Completed    []string `json:"completed"`
	CurrentIndex int      `json:"currentIndex"`
}

// Clamp returns a copy with CurrentIndex forced into [0, n-1].
func (p Progress) Clamp(n int) Progress {
	out := Progress{
		Completed:    append([]string(nil), p.Completed...),
		CurrentIndex: p.CurrentIndex,
	}
	if out.CurrentIndex > n-1 {
		out.CurrentIndex = n - 1
	}
	if out.CurrentIndex < 0 {
		out.CurrentIndex = 0
	}
	return out
}
