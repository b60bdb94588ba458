// Package fade implements a time-driven alpha ramp for fade-in spans.
//
// A Transition does not own a timer. The host's animation driver calls Tick
// on the rendering thread with the current time; each tick recomputes alpha by
// integer linear interpolation until the duration has elapsed.
package fade

import "time"

// State is the lifecycle phase of a Transition.
type State int

const (
	Pending State = iota
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

const (
	MinAlpha = 0
	MaxAlpha = 255
)

// Transition ramps alpha from MinAlpha to MaxAlpha over a duration.
type Transition struct {
	from, to int
	alpha    int
	duration time.Duration
	start    time.Time
	state    State
	stopped  bool
}

// New returns a pending transition. A non-positive duration completes on Start.
func New(duration time.Duration) *Transition {
	if duration < 0 {
		duration = 0
	}
	return &Transition{from: MinAlpha, to: MaxAlpha, alpha: MinAlpha, duration: duration}
}

func (t *Transition) Alpha() int { return t.alpha }

func (t *Transition) State() State { return t.state }

func (t *Transition) Duration() time.Duration { return t.duration }

// Stopped reports whether the transition was cancelled before completing.
func (t *Transition) Stopped() bool { return t.stopped }

// Active reports whether further ticks will change alpha.
func (t *Transition) Active() bool {
	return t.state == Running && !t.stopped
}

// Start moves a pending transition to Running at now.
func (t *Transition) Start(now time.Time) {
	if t.state != Pending || t.stopped {
		return
	}
	t.start = now
	t.state = Running
	t.alpha = t.from
	if t.duration == 0 {
		t.finish()
	}
}

// Tick samples the transition at now. It reports whether the sample was
// taken, in which case the owner should request a redraw.
func (t *Transition) Tick(now time.Time) bool {
	if !t.Active() {
		return false
	}
	elapsed := now.Sub(t.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= t.duration {
		t.finish()
		return true
	}
	next := t.from + int(int64(t.to-t.from)*int64(elapsed)/int64(t.duration))
	// samples may arrive out of order; alpha never goes back
	if next > t.alpha {
		t.alpha = next
	}
	return true
}

// Cancel stops future ticks. Alpha keeps its last value.
func (t *Transition) Cancel() {
	if t.state == Done {
		return
	}
	t.stopped = true
}

func (t *Transition) finish() {
	t.alpha = t.to
	t.state = Done
}
