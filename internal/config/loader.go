package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-eco/internal/registry"
)

// DefaultScenario is used when no topology is named.
const DefaultScenario = "default"

// Parse decodes a YAML topology document. Unknown fields are rejected.
func Parse(data []byte) (Topology, error) {
	var t Topology
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return Topology{}, fmt.Errorf("yaml decode: %w", err)
	}
	return t, nil
}

// LoadFile reads and parses a topology file.
func LoadFile(path string) (Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Topology{}, fmt.Errorf("config: failed to read topology %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Topology{}, fmt.Errorf("config: failed to parse topology %s: %w", path, err)
	}
	return t, nil
}

// Load resolves a topology reference.
// A reference ending in .yaml or .yml is read as a file. Anything else is a
// scenario ID, searched in order: ~/.eco/topologies/<id>.yaml ->
// ./topologies/<id>.yaml -> built-in scenario. An empty reference means the
// default scenario.
func Load(ref string) (Topology, error) {
	if IsFile(ref) {
		return LoadFile(ref)
	}

	id := ref
	if id == "" {
		id = DefaultScenario
	}
	filename := id + ".yaml"

	// Try user topology directory
	if userPath := userTopologyPath(filename); userPath != "" {
		if t, err := LoadFile(userPath); err == nil {
			return t, nil
		}
	}

	// Try local topologies directory
	if t, err := LoadFile(filepath.Join("topologies", filename)); err == nil {
		return t, nil
	}

	// Use built-in scenario
	s, err := registry.Get(id)
	if err != nil {
		return Topology{}, fmt.Errorf("config: %w", err)
	}
	t, err := Parse(s.Source)
	if err != nil {
		return Topology{}, fmt.Errorf("config: built-in scenario %q: %w", id, err)
	}
	return t, nil
}

// IsFile reports whether ref names a YAML file rather than a scenario ID.
func IsFile(ref string) bool {
	ext := strings.ToLower(filepath.Ext(ref))
	return ext == ".yaml" || ext == ".yml"
}

// userTopologyPath returns the path to a user topology file, or empty if home is unavailable.
func userTopologyPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eco", "topologies", filename)
}
