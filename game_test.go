package main

import (
	"testing"
	"time"
)

func TestFrameClockPassesRawDelta(t *testing.T) {
	var c frameClock
	start := time.Unix(100, 0)

	if got := c.step(start, 1.0/60); got != 1.0/60 {
		t.Fatalf("first step = %g, want the nominal tick", got)
	}

	steps := []struct {
		after time.Duration
		want  float64
	}{
		{16 * time.Millisecond, 0.016},
		{500 * time.Millisecond, 0.5},
		{2 * time.Second, 2},
		{0, 0},
	}
	now := start
	for _, s := range steps {
		now = now.Add(s.after)
		if got := c.step(now, 1.0/60); got != s.want {
			t.Fatalf("step after %v = %g, want %g", s.after, got, s.want)
		}
	}
}
