// Package registry provides a global catalog of built-in scenarios.
// Scenario sources register themselves in init() functions, allowing the CLI
// and the SSH server to discover topologies without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Scenario is a named topology definition in YAML form.
type Scenario struct {
	ID     string // Unique identifier used on the command line (e.g. "default")
	Title  string // Human-readable name
	Source []byte // YAML topology document
}

var (
	scenarios = make(map[string]Scenario)
	mu        sync.RWMutex
)

// Register adds a scenario to the catalog.
// Panics if a scenario with the same ID is already registered.
func Register(s Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if s.ID == "" {
		panic("registry: scenario without ID")
	}
	if _, exists := scenarios[s.ID]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", s.ID))
	}
	scenarios[s.ID] = s
}

// List returns all registered scenarios, sorted by ID.
func List() []Scenario {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the scenario with the given ID.
func Get(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := scenarios[id]
	if !ok {
		return Scenario{}, fmt.Errorf("registry: unknown scenario %q", id)
	}
	return s, nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scenarios[id]
	return ok
}
