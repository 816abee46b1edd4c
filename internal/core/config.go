// Package core provides the host-side runtime types shared by the CLI, the
// terminal viewer and the SSH server. It has no dependency on Bubble Tea so
// the timing logic stays pure and testable.
package core

import "time"

// RuntimeConfig contains the host parameters for driving a simulation.
type RuntimeConfig struct {
	ScreenW        int           // Screen width in characters
	ScreenH        int           // Screen height in characters
	TickRate       int           // Host ticks per second (default 60)
	FixedDelta     time.Duration // When non-zero, every tick advances by exactly this much
	MaxDelta       time.Duration // Upper bound on a wall-clock tick; zero means unbounded
	ReportInterval int           // Ticks between log reports; zero keeps the topology's value
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		MaxDelta: time.Second,
	}
}

// TickInterval returns the wall-clock interval between host ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
