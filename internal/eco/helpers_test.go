package eco

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// sampleNetwork builds the default Cooling/Energy/Mass topology.
func sampleNetwork(t *testing.T) (*Network, *Registry) {
	t.Helper()

	reg := NewRegistry()
	b := NewBuilder(reg)
	cooling := b.AddStockpile(Stockpile{Label: "Cooling", Amount: 100, Capacity: Float(100)})
	b.AddLink(Link{Label: "Radiators", Produce: []Flow{{cooling, 0.1}}, Stack: Float(1)})
	energy := b.AddStockpile(Stockpile{Label: "Energy", Amount: 100, Capacity: Float(200)})
	b.AddLink(Link{
		Label:   "Generators",
		Produce: []Flow{{energy, 10}},
		Consume: []Flow{{cooling, 10.2}},
		Stack:   Float(1),
	})
	b.AddStockpile(Stockpile{Label: "Mass"})

	n, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return n, reg
}

func mustLookup(t *testing.T, reg *Registry, name string) StockpileID {
	t.Helper()
	id, err := reg.Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", name, err)
	}
	return id
}
