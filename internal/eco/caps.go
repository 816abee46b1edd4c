package eco

import "math"

// EnforceCaps clamps every capacitated stockpile to capacity * floor(stack).
// Uncapped stockpiles are left untouched. Applying it twice is the same as
// applying it once.
func EnforceCaps(n *Network) {
	for i := range n.stockpiles {
		s := &n.stockpiles[i]
		if limit, ok := s.Limit(); ok {
			s.Amount = math.Min(s.Amount, limit)
		}
	}
}
