package config

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/vovakirdan/tui-eco/internal/registry"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

func init() {
	entries, err := defaultFS.ReadDir("defaults")
	if err != nil {
		panic(fmt.Sprintf("config: reading embedded scenarios: %v", err))
	}

	for _, e := range entries {
		data, err := defaultFS.ReadFile(path.Join("defaults", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("config: reading embedded scenario %s: %v", e.Name(), err))
		}
		t, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("config: embedded scenario %s: %v", e.Name(), err))
		}
		registry.Register(registry.Scenario{
			ID:     strings.TrimSuffix(e.Name(), path.Ext(e.Name())),
			Title:  t.Name,
			Source: data,
		})
	}
}
