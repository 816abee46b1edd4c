// Package config provides YAML-based topology loading, validation and the
// wiring of a topology into a simulation network.
package config

// Topology is the on-disk description of a flow network.
type Topology struct {
	Name           string            `yaml:"name" validate:"required"`
	Description    string            `yaml:"description,omitempty"`
	ReportInterval int               `yaml:"report_interval,omitempty" validate:"gte=0"`
	Stockpiles     []StockpileConfig `yaml:"stockpiles" validate:"required,min=1,dive"`
	Links          []LinkConfig      `yaml:"links,omitempty" validate:"dive"`
}

// StockpileConfig defines one stockpile. Capacity and Stack are optional.
type StockpileConfig struct {
	Name     string   `yaml:"name" validate:"required"`
	Amount   float64  `yaml:"amount" validate:"gte=0"`
	Capacity *float64 `yaml:"capacity,omitempty" validate:"omitempty,gte=0"`
	Stack    *float64 `yaml:"stack,omitempty" validate:"omitempty,gte=0"`
}

// LinkConfig defines a producer (produce only) or a converter (produce and
// consume). Stack defaults to 1.
type LinkConfig struct {
	Name    string       `yaml:"name" validate:"required"`
	Stack   *float64     `yaml:"stack,omitempty" validate:"omitempty,gte=0"`
	Produce []FlowConfig `yaml:"produce" validate:"required,min=1,dive"`
	Consume []FlowConfig `yaml:"consume,omitempty" validate:"dive"`
}

// FlowConfig references a stockpile by name with a rate per second.
type FlowConfig struct {
	Stockpile string  `yaml:"stockpile" validate:"required"`
	Rate      float64 `yaml:"rate" validate:"gte=0"`
}

// Kind returns "converter" when the link consumes, "producer" otherwise.
func (l LinkConfig) Kind() string {
	if len(l.Consume) > 0 {
		return "converter"
	}
	return "producer"
}
