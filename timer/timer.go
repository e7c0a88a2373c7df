// Package timer provides frame-driven countdown timers.
package timer

import (
	"math"
	"time"
)

// Mode selects whether a timer stops or restarts when it finishes.
type Mode uint8

const (
	Once      Mode = iota // Finishes a single time and stays finished
	Repeating             // Wraps around and finishes every Duration
)

// Timer counts elapsed time toward a fixed duration.
// It is advanced explicitly with Tick, typically by the previous frame's delta.
type Timer struct {
	duration time.Duration
	mode     Mode

	elapsed       time.Duration
	finished      bool
	timesFinished int // completions during the last Tick
}

// New creates a timer of the given duration and mode.
func New(d time.Duration, mode Mode) Timer {
	return Timer{duration: d, mode: mode}
}

// FromSeconds creates a timer from a duration in seconds.
func FromSeconds(sec float64, mode Mode) Timer {
	return New(Seconds(sec), mode)
}

// Seconds converts floating point seconds to a time.Duration, rounded to
// the nearest nanosecond.
func Seconds(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}

// Tick advances the timer by dt and returns it for chaining.
func (t *Timer) Tick(dt time.Duration) *Timer {
	t.timesFinished = 0
	if dt <= 0 {
		return t
	}

	if t.mode == Once {
		if t.finished {
			return t
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.timesFinished = 1
		}
		return t
	}

	// Repeating: a zero duration would finish infinitely often
	if t.duration <= 0 {
		t.finished = true
		t.timesFinished = 1
		return t
	}
	t.elapsed += dt
	t.finished = false
	if t.elapsed >= t.duration {
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
		t.finished = true
	}
	return t
}

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick returns how many times the last Tick completed the timer.
// Only repeating timers can exceed one.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Finished reports whether a Once timer has completed, or whether a
// repeating timer completed during the last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns time accumulated toward the current cycle.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns time left before the timer next finishes.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// Duration returns the configured period.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Mode returns the timer mode.
func (t *Timer) Mode() Mode {
	return t.mode
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
