package core

import (
	"testing"
	"time"
)

func TestClockFixed(t *testing.T) {
	c := NewClock(RuntimeConfig{FixedDelta: 250 * time.Millisecond})
	now := time.Now()

	for i := 0; i < 3; i++ {
		if got := c.Delta(now.Add(time.Duration(i) * time.Hour)); got != 0.25 {
			t.Errorf("Delta() = %v, expected 0.25", got)
		}
	}
	if !c.Fixed() {
		t.Error("Fixed() should be true")
	}
}

func TestClockWall(t *testing.T) {
	c := NewClock(RuntimeConfig{MaxDelta: time.Second})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected float64
	}{
		{"first tick", start, 0},
		{"half second", start.Add(500 * time.Millisecond), 0.5},
		{"capped", start.Add(10 * time.Second), 1},
		{"backwards", start, 0},
	}

	for _, tc := range tests {
		if got := c.Delta(tc.at); got != tc.expected {
			t.Errorf("%s: Delta() = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(RuntimeConfig{})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.Delta(start)

	c.Reset()
	if got := c.Delta(start.Add(time.Minute)); got != 0 {
		t.Errorf("Delta() after Reset = %v, expected 0", got)
	}
	if got := c.Delta(start.Add(time.Minute + 100*time.Millisecond)); got < 0.0999 || got > 0.1001 {
		t.Errorf("Delta() = %v, expected 0.1", got)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{10, 100 * time.Millisecond},
		{0, time.Second / 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickInterval(); got != tc.expected {
			t.Errorf("TickInterval() with rate %d = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
