package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-eco/internal/eco"
)

// Build validates t and constructs its network. Stockpiles are created in
// file order, then links in file order, which fixes converter priority.
// The returned registry maps stockpile names to ids.
func Build(t Topology) (*eco.Network, *eco.Registry, error) {
	if err := Validate(t); err != nil {
		return nil, nil, err
	}

	reg := eco.NewRegistry()
	b := eco.NewBuilder(reg)
	for _, s := range t.Stockpiles {
		b.AddStockpile(eco.Stockpile{
			Label:    s.Name,
			Amount:   s.Amount,
			Capacity: s.Capacity,
			Stack:    s.Stack,
		})
	}

	var errs []error
	for _, l := range t.Links {
		produce, err := resolveFlows(reg, l.Name, l.Produce)
		if err != nil {
			errs = append(errs, err)
		}
		consume, err := resolveFlows(reg, l.Name, l.Consume)
		if err != nil {
			errs = append(errs, err)
		}
		b.AddLink(eco.Link{
			Label:   l.Name,
			Produce: produce,
			Consume: consume,
			Stack:   l.Stack,
		})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, nil, fmt.Errorf("config: topology %q: %w", t.Name, err)
	}

	n, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("config: topology %q: %w", t.Name, err)
	}
	return n, reg, nil
}

func resolveFlows(reg *eco.Registry, link string, flows []FlowConfig) ([]eco.Flow, error) {
	out := make([]eco.Flow, 0, len(flows))
	var errs []error
	for _, f := range flows {
		id, err := reg.Lookup(f.Stockpile)
		if err != nil {
			errs = append(errs, fmt.Errorf("link %q: %w", link, err))
			continue
		}
		out = append(out, eco.Flow{Stockpile: id, Rate: f.Rate})
	}
	return out, errors.Join(errs...)
}
