package timer

import (
	"testing"
	"time"
)

func TestOnceFinishesExactlyOnce(t *testing.T) {
	tm := FromSeconds(0.4, Once)

	finishes := 0
	for i := 0; i < 100; i++ {
		if tm.Tick(10 * time.Millisecond).JustFinished() {
			finishes++
			if i != 39 {
				t.Errorf("expected completion on tick 39, got tick %d", i)
			}
		}
	}
	if finishes != 1 {
		t.Errorf("expected exactly one completion, got %d", finishes)
	}
	if !tm.Finished() {
		t.Error("once timer should stay finished")
	}
	if tm.Elapsed() != 400*time.Millisecond {
		t.Errorf("elapsed should clamp at duration, got %v", tm.Elapsed())
	}
}

func TestRepeatingWrapsOverflow(t *testing.T) {
	tm := FromSeconds(0.4, Repeating)

	tm.Tick(300 * time.Millisecond)
	if tm.JustFinished() {
		t.Fatal("should not finish before duration")
	}
	tm.Tick(150 * time.Millisecond)
	if !tm.JustFinished() {
		t.Fatal("expected completion after 450ms")
	}
	if tm.Elapsed() != 50*time.Millisecond {
		t.Errorf("expected 50ms carried over, got %v", tm.Elapsed())
	}
	tm.Tick(10 * time.Millisecond)
	if tm.JustFinished() || tm.Finished() {
		t.Error("repeating timer should clear finished on the next tick")
	}
}

func TestRepeatingLongTick(t *testing.T) {
	tm := FromSeconds(1, Repeating)
	tm.Tick(3500 * time.Millisecond)
	if got := tm.TimesFinishedThisTick(); got != 3 {
		t.Errorf("expected 3 completions, got %d", got)
	}
	if tm.Elapsed() != 500*time.Millisecond {
		t.Errorf("expected 500ms remainder, got %v", tm.Elapsed())
	}
}

func TestStepIndependence(t *testing.T) {
	steps := [][]time.Duration{
		{400 * time.Millisecond},
		{100 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond},
		{390 * time.Millisecond, 10 * time.Millisecond},
	}
	for _, seq := range steps {
		tm := FromSeconds(0.4, Once)
		for _, dt := range seq {
			tm.Tick(dt)
		}
		if !tm.Finished() {
			t.Errorf("sequence %v should finish the timer", seq)
		}
	}
}

func TestZeroDeltaIsNoop(t *testing.T) {
	tm := FromSeconds(0.1, Once)
	tm.Tick(0)
	if tm.Elapsed() != 0 || tm.JustFinished() {
		t.Error("zero delta must not advance the timer")
	}
	if tm.Fraction() != 0 {
		t.Errorf("expected fraction 0, got %f", tm.Fraction())
	}
}

func TestReset(t *testing.T) {
	tm := FromSeconds(0.2, Once)
	tm.Tick(time.Second)
	tm.Reset()
	if tm.Finished() || tm.Elapsed() != 0 {
		t.Error("reset should rewind the timer")
	}
	if tm.Remaining() != 200*time.Millisecond {
		t.Errorf("expected 200ms remaining, got %v", tm.Remaining())
	}
}

func TestSecondsRounds(t *testing.T) {
	if got := Seconds(1.0 / 60); got != 16666667*time.Nanosecond {
		t.Errorf("expected 16666667ns, got %d", got)
	}
	tm := FromSeconds(1, Repeating)
	for i := 0; i < 60; i++ {
		tm.Tick(Seconds(1.0 / 60))
	}
	if !tm.JustFinished() {
		t.Error("60 frames at 60fps should complete a one second timer")
	}
}
