// Package eco implements the resource-flow simulation engine: a small network
// of stockpiles connected by production and conversion links, advanced once
// per tick under capacity limits and multi-input demand satisfaction.
//
// The package has no dependency on the terminal UI. Hosts build a Network
// with a Builder, wrap it in an Engine and call Engine.Tick once per frame.
package eco

import (
	"fmt"
	"math"
)

// StockpileID addresses a stockpile in a Network's arena.
type StockpileID int

// String returns the fallback display identity used for unlabeled stockpiles.
func (id StockpileID) String() string {
	return fmt.Sprintf("stockpile#%d", int(id))
}

// LinkID addresses a production or conversion link in a Network's arena.
type LinkID int

// String returns the fallback display identity used for unlabeled links.
func (id LinkID) String() string {
	return fmt.Sprintf("link#%d", int(id))
}

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 {
	return &v
}

// Stockpile holds a scalar quantity of one resource.
type Stockpile struct {
	Label    string   // Display name; empty falls back to the ID
	Amount   float64  // Current quantity
	Capacity *float64 // Nil means unbounded
	Stack    *float64 // Nil means 1; floored on use
}

// StackFactor returns the floored stack multiplier.
func (s *Stockpile) StackFactor() float64 {
	return stackFactor(s.Stack)
}

// Limit returns the effective capacity (capacity * floor(stack)) and whether
// the stockpile is capacitated at all.
func (s *Stockpile) Limit() (float64, bool) {
	if s.Capacity == nil {
		return 0, false
	}
	return *s.Capacity * s.StackFactor(), true
}

// Full reports whether a capacitated stockpile is at or above its limit.
func (s *Stockpile) Full() bool {
	limit, ok := s.Limit()
	return ok && s.Amount >= limit
}

// Flow is one (stockpile, rate per unit time) pair of a link.
type Flow struct {
	Stockpile StockpileID
	Rate      float64
}

// LinkKind classifies a link by which flow lists it carries.
type LinkKind int

const (
	KindProducer  LinkKind = iota // Production only
	KindConverter                 // Consumption and production
)

// String returns a human-readable name for the kind.
func (k LinkKind) String() string {
	switch k {
	case KindProducer:
		return "producer"
	case KindConverter:
		return "converter"
	default:
		return "unknown"
	}
}

// Link is a transformation rule: it produces into target stockpiles and,
// for converters, consumes from source stockpiles.
type Link struct {
	Label   string
	Produce []Flow
	Consume []Flow
	Stack   *float64 // Nil means 1; floored on use
}

// Kind reports whether the link is a pure producer or a converter.
func (l *Link) Kind() LinkKind {
	if len(l.Consume) > 0 {
		return KindConverter
	}
	return KindProducer
}

// StackFactor returns the floored stack multiplier.
func (l *Link) StackFactor() float64 {
	return stackFactor(l.Stack)
}

// stackFactor resolves an optional stack to floor(stack), defaulting to 1.
// Negative and non-finite stacks count as zero instances.
func stackFactor(stack *float64) float64 {
	if stack == nil {
		return 1
	}
	f := math.Floor(*stack)
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
