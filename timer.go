package crank

import (
	"time"
)

type TimerMode uint8

const TimerModeOnce TimerMode = 0
const TimerModeRepeating TimerMode = 1

// Timer is a one shot or repeating timer with a specific duration,
// advanced manually from a system via Tick.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration

	justFinished bool
	finished     bool
	mode         TimerMode
}

// NewTimer creates a new timer.
func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{
		duration: duration,
		mode:     mode,
	}
}

// Tick adds the given amount of time to the Timer.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.justFinished = false

	if t.finished && t.mode == TimerModeOnce {
		// nothing to do, timer is done
		return t
	}

	t.elapsed += delta

	if t.elapsed >= t.duration && t.duration > 0 {
		t.justFinished = true

		if t.mode == TimerModeOnce {
			t.elapsed = t.duration
			t.finished = true
			return t
		}

		// repeating timer resets elapsed time
		t.elapsed = t.elapsed % t.duration
	}

	return t
}

// Reset rewinds the Timer to its initial state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}

// Duration returns the configured duration of the Timer.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the already elapsed time of the Timer.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the remaining time of the Timer.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns the fraction to that this timer has finished. A freshly
// started timer will have a Fraction value of 0.
func (t *Timer) Fraction() float64 {
	if t.duration == 0 {
		return 1
	}

	return float64(t.elapsed) / float64(t.duration)
}

// Finished reports whether a one shot timer has run its full duration.
// For a repeating timer it is equivalent to JustFinished.
func (t *Timer) Finished() bool {
	if t.mode == TimerModeRepeating {
		return t.justFinished
	}

	return t.finished
}

// JustFinished reports whether the timer finished during the most recent
// Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}
