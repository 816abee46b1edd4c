package main

import (
	"testing"
)

func TestStepScenario(t *testing.T) {
	tests := []struct {
		name     string
		ticks    int
		expected string
	}{
		{"zero ticks shows initial state", 0, "Cooling : 100.00\nEnergy : 100.00\nMass : 0.00"},
		{"one tick", 1, "Cooling : 89.80\nEnergy : 110.00\nMass : 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())

			got, err := stepScenario("default", tt.ticks, 1, 0, nil)
			if err != nil {
				t.Fatalf("stepScenario() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("stepScenario() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestStepScenarioRejectsNegativeTicks(t *testing.T) {
	if _, err := stepScenario("default", -1, 1, 0, nil); err == nil {
		t.Error("expected an error for negative ticks")
	}
}
