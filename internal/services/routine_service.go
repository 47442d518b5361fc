package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/neck-cli/internal/countdown"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/modes"
	"github.com/xvierd/neck-cli/internal/ports"
	"github.com/xvierd/neck-cli/internal/sched"
)

// RoutineService owns the session state of one routine and runs the
// per-mode exercise state machine on top of a single countdown.
//
// It is not safe for concurrent use. Every method, and every callback it
// schedules, runs on the execution context of its scheduler.
type RoutineService struct {
	routine  *domain.Routine
	storage  ports.Storage
	sched    sched.Scheduler
	cues     ports.CuePlayer
	notifier ports.Notifier
	log      *slog.Logger
	tick     time.Duration

	state         *domain.SessionState
	timer         *countdown.Countdown
	segment       time.Duration
	generation    string
	cancelRestart sched.Cancel
	listeners     []func(domain.Snapshot)
}

// NewRoutineService creates a service positioned at the first exercise.
// cues and notifier may be nil. Call Hydrate to restore saved progress.
func NewRoutineService(routine *domain.Routine, storage ports.Storage, s sched.Scheduler, cues ports.CuePlayer, notifier ports.Notifier) *RoutineService {
	if cues == nil {
		cues = silentCues{}
	}
	svc := &RoutineService{
		routine:  routine,
		storage:  storage,
		sched:    s,
		cues:     cues,
		notifier: notifier,
		log:      slog.New(slog.DiscardHandler),
		tick:     countdown.DefaultTick,
		state:    domain.NewSessionState(),
	}
	svc.activate()
	return svc
}

// SetLogger sets the logger. A nil logger discards output.
func (s *RoutineService) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.log = l
}

// SetTickInterval changes the countdown tick cadence for the next activation.
func (s *RoutineService) SetTickInterval(d time.Duration) {
	if d > 0 {
		s.tick = d
	}
}

// OnChange registers fn to receive a snapshot after every state change and
// every countdown tick.
func (s *RoutineService) OnChange(fn func(domain.Snapshot)) {
	s.listeners = append(s.listeners, fn)
}

// Routine returns the routine being run.
func (s *RoutineService) Routine() *domain.Routine {
	return s.routine
}

// Hydrate restores progress and theme from storage. Anything unreadable is
// logged and replaced by defaults.
func (s *RoutineService) Hydrate(ctx context.Context) {
	progress, err := s.storage.Progress().Load(ctx)
	switch {
	case err != nil:
		s.log.Warn("ignoring stored progress", "error", err)
	case progress != nil:
		s.state.ApplyProgress(*progress, s.routine.Len())
	}

	theme, err := s.storage.Preferences().LoadTheme(ctx)
	if err != nil {
		s.log.Warn("ignoring stored theme", "error", err)
		theme = domain.DefaultTheme
	}
	s.state.Theme = theme

	s.activate()
	s.log.Info("session restored",
		"index", s.state.CurrentIndex,
		"completed", s.state.CompletedCount(),
		"theme", s.state.Theme)
	s.changed()
}

// Start interprets a start press according to the active exercise's mode.
func (s *RoutineService) Start() {
	ex := s.current()
	b := modes.ForMode(ex.Mode)

	switch {
	case !b.UsesTimer():
		s.cues.Play(domain.CueAcknowledge...)

	case b.Loops():
		if s.state.HoldLoopActive {
			return
		}
		s.state.HoldLoopActive = true
		c := b.Counter()
		if s.state.Count(c) >= b.LoopTarget(ex.Targets) {
			s.state.SetCount(c, 0)
		}
		s.segment = b.Segment(ex.Targets)
		s.timer.Start(s.segment)

	default:
		if s.timer.Remaining() > 0 {
			s.timer.Resume()
		} else {
			s.segment = b.Segment(ex.Targets)
			s.timer.Start(s.segment)
		}
	}

	s.log.Debug("start", "exercise", ex.ID, "mode", ex.Mode)
	s.changed()
}

// Pause stops the countdown and ends any automatic hold sequence.
func (s *RoutineService) Pause() {
	s.timer.Pause()
	s.stopLoop()
	s.changed()
}

// Reset zeroes the countdown and ends any automatic hold sequence.
// Counters are kept.
func (s *RoutineService) Reset() {
	s.timer.Reset()
	s.stopLoop()
	s.changed()
}

// IncReps adds one rep.
func (s *RoutineService) IncReps() { s.adjust(domain.CounterReps, 1) }

// DecReps removes one rep, stopping at zero.
func (s *RoutineService) DecReps() { s.adjust(domain.CounterReps, -1) }

// IncSets adds one set.
func (s *RoutineService) IncSets() { s.adjust(domain.CounterSets, 1) }

// DecSets removes one set, stopping at zero.
func (s *RoutineService) DecSets() { s.adjust(domain.CounterSets, -1) }

func (s *RoutineService) adjust(c domain.Counter, delta int) {
	if delta > 0 {
		s.state.Increment(c)
	} else {
		s.state.Decrement(c)
	}
	s.changed()
}

// Select makes the exercise at index i active and saves the new position.
func (s *RoutineService) Select(ctx context.Context, i int) error {
	if _, ok := s.routine.At(i); !ok {
		return fmt.Errorf("%w: no step %d", domain.ErrExerciseNotFound, i+1)
	}
	s.state.CurrentIndex = i
	s.activate()
	s.changed()
	return s.saveProgress(ctx)
}

// SelectByID makes the exercise with the given ID active.
func (s *RoutineService) SelectByID(ctx context.Context, id string) error {
	i := s.routine.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, id)
	}
	return s.Select(ctx, i)
}

// Prev moves to the previous exercise. It does nothing at the first one.
func (s *RoutineService) Prev(ctx context.Context) error {
	if s.state.CurrentIndex <= 0 {
		return nil
	}
	return s.Select(ctx, s.state.CurrentIndex-1)
}

// Next moves to the next exercise. It does nothing at the last one.
func (s *RoutineService) Next(ctx context.Context) error {
	if s.state.CurrentIndex >= s.routine.Last() {
		return nil
	}
	return s.Select(ctx, s.state.CurrentIndex+1)
}

// MarkComplete records the active exercise as done and moves on to the
// next one, if any.
func (s *RoutineService) MarkComplete(ctx context.Context) error {
	ex := s.current()
	added := s.state.MarkCompleted(ex.ID)
	s.cues.Play(domain.CueConfirm...)
	s.log.Info("exercise complete", "exercise", ex.ID, "new", added)

	if added && s.completedSteps() == s.routine.Len() {
		s.notify("routine", func(n ports.Notifier) error {
			return n.NotifyRoutineDone(s.routine.Len())
		})
	}

	if err := s.saveProgress(ctx); err != nil {
		s.changed()
		return err
	}
	if s.state.CurrentIndex < s.routine.Last() {
		return s.Select(ctx, s.state.CurrentIndex+1)
	}
	s.changed()
	return nil
}

// ResetProgress forgets every completion and returns to the first exercise.
// Callers are expected to have confirmed with the user.
func (s *RoutineService) ResetProgress(ctx context.Context) error {
	s.state.ClearCompleted()
	s.log.Info("progress reset")
	return s.Select(ctx, 0)
}

// ToggleTheme flips the theme and saves it.
func (s *RoutineService) ToggleTheme(ctx context.Context) error {
	return s.SetTheme(ctx, s.state.Theme.Toggle())
}

// SetTheme sets the theme and saves it.
func (s *RoutineService) SetTheme(ctx context.Context, t domain.Theme) error {
	s.state.Theme = t
	s.changed()
	if err := s.storage.Preferences().SaveTheme(ctx, t); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Snapshot returns the current state for rendering.
func (s *RoutineService) Snapshot() domain.Snapshot {
	ex := s.current()
	exercises := s.routine.Exercises()
	steps := make([]domain.StepView, len(exercises))
	done := 0
	for i, e := range exercises {
		completed := s.state.IsCompleted(e.ID)
		if completed {
			done++
		}
		steps[i] = domain.StepView{
			Index:     i,
			ID:        e.ID,
			Title:     e.Title,
			Category:  e.Category,
			Completed: completed,
			Active:    i == s.state.CurrentIndex,
		}
	}

	return domain.Snapshot{
		Steps:          steps,
		ActiveIndex:    s.state.CurrentIndex,
		Active:         ex,
		TargetSummary:  modes.ForMode(ex.Mode).TargetSummary(ex.Targets),
		Remaining:      s.timer.Remaining(),
		Segment:        s.segment,
		Running:        s.timer.Running(),
		RepsDone:       s.state.RepsDone,
		SetsDone:       s.state.SetsDone,
		HoldLoopActive: s.state.HoldLoopActive,
		Theme:          s.state.Theme,
		CompletedCount: done,
		Total:          len(exercises),
	}
}

// activate discards the current countdown and any pending restart, then
// prepares a fresh countdown for the exercise at CurrentIndex.
func (s *RoutineService) activate() {
	if s.timer != nil {
		s.timer.Pause()
	}
	s.stopLoop()
	s.state.ResetCounters()
	s.segment = 0

	gen := domain.NewGeneration()
	s.generation = gen
	s.timer = countdown.New(s.sched,
		func(time.Duration) { s.changed() },
		func() { s.onCountdownDone(gen) },
		countdown.WithTick(s.tick),
	)
}

func (s *RoutineService) onCountdownDone(gen string) {
	if gen != s.generation {
		return
	}
	s.cues.Play(domain.CueCountdownDone...)

	ex := s.current()
	b := modes.ForMode(ex.Mode)
	if !b.Loops() {
		s.notify("timer", func(n ports.Notifier) error { return n.NotifyTimerDone(ex) })
		s.changed()
		return
	}
	if !s.state.HoldLoopActive {
		s.changed()
		return
	}

	count := s.state.Increment(b.Counter())
	if count < b.LoopTarget(ex.Targets) {
		s.scheduleRestart(gen, b.RepeatGap(), b.Segment(ex.Targets))
	} else {
		s.state.HoldLoopActive = false
		s.notify("loop", func(n ports.Notifier) error { return n.NotifyLoopDone(ex, count) })
	}
	s.changed()
}

// scheduleRestart queues the next hold. The restart is dropped if a
// different exercise is active or the sequence was stopped by then.
func (s *RoutineService) scheduleRestart(gen string, gap, segment time.Duration) {
	s.cancelPendingRestart()
	s.cancelRestart = s.sched.After(gap, func() {
		s.cancelRestart = nil
		if gen != s.generation || !s.state.HoldLoopActive {
			s.log.Debug("dropping stale hold restart")
			return
		}
		s.segment = segment
		s.timer.Start(segment)
		s.changed()
	})
}

func (s *RoutineService) stopLoop() {
	s.state.HoldLoopActive = false
	s.cancelPendingRestart()
}

func (s *RoutineService) cancelPendingRestart() {
	if s.cancelRestart != nil {
		s.cancelRestart()
		s.cancelRestart = nil
	}
}

func (s *RoutineService) current() domain.Exercise {
	ex, _ := s.routine.At(s.state.CurrentIndex)
	return ex
}

func (s *RoutineService) completedSteps() int {
	n := 0
	for _, ex := range s.routine.Exercises() {
		if s.state.IsCompleted(ex.ID) {
			n++
		}
	}
	return n
}

func (s *RoutineService) saveProgress(ctx context.Context) error {
	if err := s.storage.Progress().Save(ctx, s.state.Progress()); err != nil {
		s.log.Error("failed to save progress", "error", err)
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (s *RoutineService) notify(event string, fn func(ports.Notifier) error) {
	if s.notifier == nil {
		return
	}
	if err := fn(s.notifier); err != nil {
		s.log.Warn("notification failed", "event", event, "error", err)
	}
}

func (s *RoutineService) changed() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.listeners {
		fn(snap)
	}
}

// silentCues is used when no cue player is configured.
type silentCues struct{}

func (silentCues) Play(...domain.Tone) {}
