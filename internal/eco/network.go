package eco

import (
	"errors"
	"fmt"
	"math"
)

// Configuration defects reported by the Builder and Registry.
var (
	ErrUnknownStockpile = errors.New("unknown stockpile")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrEmptyLink        = errors.New("link has no production")
	ErrInvalidRate      = errors.New("rate must be a finite non-negative number")
)

// Network is the stockpile store plus the fixed topology of links.
// It is only obtainable from Builder.Build, so every flow references a
// stockpile that exists. A Network is not safe for concurrent use.
type Network struct {
	stockpiles []Stockpile
	links      []Link
	producers  []LinkID // Creation order
	converters []LinkID // Creation order
}

// Len returns the number of stockpiles.
func (n *Network) Len() int {
	return len(n.stockpiles)
}

// Stockpile returns the stockpile with the given id.
// It panics if id is out of range.
func (n *Network) Stockpile(id StockpileID) *Stockpile {
	return &n.stockpiles[id]
}

// Amount returns the current amount of the given stockpile.
func (n *Network) Amount(id StockpileID) float64 {
	return n.stockpiles[id].Amount
}

// Label returns the display name of a stockpile, falling back to its id.
func (n *Network) Label(id StockpileID) string {
	if l := n.stockpiles[id].Label; l != "" {
		return l
	}
	return id.String()
}

// Link returns the link with the given id.
func (n *Network) Link(id LinkID) *Link {
	return &n.links[id]
}

// Links returns the number of links.
func (n *Network) Links() int {
	return len(n.links)
}

// Producers returns pure producer links in creation order.
func (n *Network) Producers() []LinkID {
	return n.producers
}

// Converters returns converter links in creation order.
func (n *Network) Converters() []LinkID {
	return n.converters
}

// Registry maps stable names to stockpile identities. It is built once at
// startup and only used by topology construction.
type Registry struct {
	ids   map[string]StockpileID
	names []string // Registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]StockpileID)}
}

// Register binds name to id. Names must be unique.
func (r *Registry) Register(name string, id StockpileID) error {
	if _, exists := r.ids[name]; exists {
		return fmt.Errorf("eco: stockpile %q: %w", name, ErrDuplicateName)
	}
	r.ids[name] = id
	r.names = append(r.names, name)
	return nil
}

// Lookup resolves a name to its stockpile id.
func (r *Registry) Lookup(name string) (StockpileID, error) {
	id, ok := r.ids[name]
	if !ok {
		return 0, fmt.Errorf("eco: stockpile %q: %w", name, ErrUnknownStockpile)
	}
	return id, nil
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	return r.names
}

// Builder accumulates stockpiles and links and validates them into a Network.
type Builder struct {
	reg        *Registry
	stockpiles []Stockpile
	links      []Link
	errs       []error
}

// NewBuilder creates a builder that registers labeled stockpiles in reg.
// reg may be nil when no name lookups are needed.
func NewBuilder(reg *Registry) *Builder {
	return &Builder{reg: reg}
}

// AddStockpile appends a stockpile and returns its id. A non-empty label is
// registered in the builder's registry.
func (b *Builder) AddStockpile(s Stockpile) StockpileID {
	id := StockpileID(len(b.stockpiles))
	b.stockpiles = append(b.stockpiles, s)
	if b.reg != nil && s.Label != "" {
		if err := b.reg.Register(s.Label, id); err != nil {
			b.errs = append(b.errs, err)
		}
	}
	return id
}

// AddLink appends a producer or converter and returns its id.
func (b *Builder) AddLink(l Link) LinkID {
	id := LinkID(len(b.links))
	b.links = append(b.links, l)
	return id
}

// Build validates the topology and returns the Network. All defects are
// joined into the returned error.
func (b *Builder) Build() (*Network, error) {
	errs := append([]error(nil), b.errs...)

	n := &Network{
		stockpiles: append([]Stockpile(nil), b.stockpiles...),
		links:      make([]Link, len(b.links)),
	}

	for i, l := range b.links {
		id := LinkID(i)
		name := l.Label
		if name == "" {
			name = id.String()
		}

		if len(l.Produce) == 0 {
			errs = append(errs, fmt.Errorf("eco: link %q: %w", name, ErrEmptyLink))
			continue
		}
		for _, f := range append(append([]Flow(nil), l.Consume...), l.Produce...) {
			if f.Stockpile < 0 || int(f.Stockpile) >= len(n.stockpiles) {
				errs = append(errs, fmt.Errorf("eco: link %q references %v: %w", name, f.Stockpile, ErrUnknownStockpile))
			}
			if f.Rate < 0 || math.IsNaN(f.Rate) || math.IsInf(f.Rate, 0) {
				errs = append(errs, fmt.Errorf("eco: link %q rate %v: %w", name, f.Rate, ErrInvalidRate))
			}
		}

		l.Produce = append([]Flow(nil), l.Produce...)
		l.Consume = append([]Flow(nil), l.Consume...)
		n.links[i] = l
		if l.Kind() == KindConverter {
			n.converters = append(n.converters, id)
		} else {
			n.producers = append(n.producers, id)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return n, nil
}

// MustBuild is like Build but panics with the diagnostic on a defect.
func (b *Builder) MustBuild() *Network {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}
