package pomodoro

import (
	"context"
	"sync"
	"time"
)

// Runner drives a Timer with a periodic tick. The tick is only scheduled
// while the timer is running; pausing, Stop or context cancellation
// unschedules it.
type Runner struct {
	mu       sync.Mutex
	timer    *Timer
	interval time.Duration

	onTick     func(State)
	onComplete func(Completion)

	watchers map[int]func(Event)
	nextID   int

	cancel context.CancelFunc
	done   chan struct{}
}

type EventKind string

const (
	EventChanged  EventKind = "changed"
	EventTick     EventKind = "tick"
	EventComplete EventKind = "complete"
)

// Event is delivered to watchers after every state change. Completion is set
// only for EventComplete, whose State is the idle timer of the next mode.
type Event struct {
	Kind       EventKind
	State      State
	Completion *Completion
}

type RunnerOption func(*Runner)

func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) { r.interval = d }
}

func OnTick(fn func(State)) RunnerOption {
	return func(r *Runner) { r.onTick = fn }
}

func OnComplete(fn func(Completion)) RunnerOption {
	return func(r *Runner) { r.onComplete = fn }
}

func NewRunner(timer *Timer, opts ...RunnerOption) *Runner {
	r := &Runner{
		timer:    timer,
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Watch registers fn for every later event and returns a func that removes
// it. Watchers are called outside the runner's lock.
func (r *Runner) Watch(fn func(Event)) (unwatch func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.watchers == nil {
		r.watchers = make(map[int]func(Event))
	}
	id := r.nextID
	r.nextID++
	r.watchers[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.watchers, id)
	}
}

func (r *Runner) watchersLocked() []func(Event) {
	fns := make([]func(Event), 0, len(r.watchers))
	for _, fn := range r.watchers {
		fns = append(fns, fn)
	}
	return fns
}

func notify(fns []func(Event), ev Event) {
	for _, fn := range fns {
		fn(ev)
	}
}

// Do runs fn against the timer under the runner's lock and reconciles the
// tick loop with the resulting running flag.
func (r *Runner) Do(ctx context.Context, fn func(t *Timer)) State {
	r.mu.Lock()
	fn(r.timer)
	if r.timer.Running() {
		r.startLocked(ctx)
	} else {
		r.stopLocked()
	}
	state := r.timer.State()
	watchers := r.watchersLocked()
	r.mu.Unlock()

	notify(watchers, Event{Kind: EventChanged, State: state})
	return state
}

func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer.State()
}

// Ticking reports whether a tick loop is scheduled.
func (r *Runner) Ticking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Stop pauses the timer and waits for the tick loop to exit.
func (r *Runner) Stop() {
	r.mu.Lock()
	wasRunning := r.timer.Running()
	r.timer.Pause()
	done := r.done
	r.stopLocked()
	state := r.timer.State()
	watchers := r.watchersLocked()
	r.mu.Unlock()

	if done != nil {
		<-done
	}
	if wasRunning {
		notify(watchers, Event{Kind: EventChanged, State: state})
	}
}

func (r *Runner) startLocked(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	go r.loop(loopCtx, done)
}

func (r *Runner) stopLocked() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.cancel = nil
	r.done = nil
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.mu.Lock()
			if r.done == done {
				r.timer.Pause()
				r.cancel = nil
				r.done = nil
			}
			r.mu.Unlock()
			return
		case <-ticker.C:
			r.mu.Lock()
			if r.done != done {
				r.mu.Unlock()
				return
			}
			completion := r.timer.Tick()
			state := r.timer.State()
			if !r.timer.Running() {
				r.cancel()
				r.cancel = nil
				r.done = nil
			}
			watchers := r.watchersLocked()
			r.mu.Unlock()

			if r.onTick != nil {
				r.onTick(state)
			}
			if completion != nil {
				if r.onComplete != nil {
					r.onComplete(*completion)
				}
				notify(watchers, Event{Kind: EventComplete, State: state, Completion: completion})
			} else {
				notify(watchers, Event{Kind: EventTick, State: state})
			}
			if !state.Running {
				return
			}
		}
	}
}
