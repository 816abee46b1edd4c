package config

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-eco/internal/eco"
)

// Instance is a runnable simulation built from a topology.
type Instance struct {
	Topology Topology
	Engine   *eco.Engine
	Registry *eco.Registry
	Readout  *eco.Readout
}

// Instantiate builds t and wires an engine whose reporter logs to logger
// (may be nil) and writes the instance's readout. The topology's report
// interval applies unless opts override it.
func Instantiate(t Topology, logger *log.Logger, opts ...eco.ReporterOption) (*Instance, error) {
	n, reg, err := Build(t)
	if err != nil {
		return nil, err
	}

	readout := &eco.Readout{}
	all := append([]eco.ReporterOption{eco.WithInterval(t.ReportInterval)}, opts...)
	reporter := eco.NewReporter(logger, readout, all...)

	return &Instance{
		Topology: t,
		Engine:   eco.NewEngine(n, reporter),
		Registry: reg,
		Readout:  readout,
	}, nil
}

// Network returns the simulated network.
func (i *Instance) Network() *eco.Network {
	return i.Engine.Network()
}
