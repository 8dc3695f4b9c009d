package interview

import "time"

type TimerState string

const (
	TimerRunning TimerState = "running"
	TimerPaused  TimerState = "paused"
	TimerExpired TimerState = "expired"
)

// Timer counts down the answer window of the current question in whole seconds.
type Timer struct {
	State     TimerState `json:"state"`
	Limit     int        `json:"limit"`
	Remaining int        `json:"remaining"`
	PausedAt  *time.Time `json:"pausedAt,omitempty"`
}

func NewTimer(limit int) Timer {
	return Timer{State: TimerRunning, Limit: limit, Remaining: limit}
}

// Tick advances the countdown by one second. It reports true exactly once,
// on the tick that moves the timer into TimerExpired.
func (t *Timer) Tick() bool {
	if t.State != TimerRunning {
		return false
	}
	t.Remaining--
	if t.Remaining > 0 {
		return false
	}
	t.Remaining = 0
	t.State = TimerExpired
	return true
}

func (t *Timer) Pause(now time.Time) bool {
	if t.State != TimerRunning {
		return false
	}
	t.State = TimerPaused
	t.PausedAt = &now
	return true
}

func (t *Timer) Resume() bool {
	if t.State != TimerPaused {
		return false
	}
	t.State = TimerRunning
	t.PausedAt = nil
	return true
}

// Elapsed is how much of the window has been used.
func (t Timer) Elapsed() int {
	return t.Limit - t.Remaining
}

func (t Timer) clone() Timer {
	t.PausedAt = cloneTime(t.PausedAt)
	return t
}
