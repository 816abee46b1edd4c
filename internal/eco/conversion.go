package eco

import "math"

// Convert runs the conversion step over all converters in creation order.
// Each converter sees the mutations of the converters evaluated before it.
func Convert(n *Network, dt float64) {
	dt = sanitizeDelta(dt)
	for _, id := range n.converters {
		convertOne(n, &n.links[id], dt)
	}
}

// Satisfaction returns the fraction of nominal throughput the converter can
// achieve this tick given its inputs and output headroom, in [0, 1].
func Satisfaction(n *Network, l *Link, dt float64) float64 {
	dt = sanitizeDelta(dt)
	k := l.StackFactor()
	satisfaction := 1.0

	for _, f := range l.Consume {
		have := n.stockpiles[f.Stockpile].Amount
		if have <= 0 {
			// Hard zero so rounding can never drive a source negative.
			satisfaction = 0
			continue
		}
		required := f.Rate * dt * k
		if required > 0 {
			satisfaction = math.Min(satisfaction, have/required)
		}
	}

	// A single full output blocks the whole converter.
	for _, f := range l.Produce {
		if n.stockpiles[f.Stockpile].Full() {
			satisfaction = 0
		}
	}

	return clamp01(satisfaction)
}

func convertOne(n *Network, l *Link, dt float64) {
	satisfaction := Satisfaction(n, l, dt)
	if satisfaction == 0 {
		return
	}
	k := l.StackFactor()

	for _, f := range l.Consume {
		s := &n.stockpiles[f.Stockpile]
		required := f.Rate * dt * k
		if required > 0 && s.Amount/required <= satisfaction {
			// The limiting input is drained exactly.
			s.Amount = 0
			continue
		}
		s.Amount = math.Max(s.Amount-f.Rate*dt*k*satisfaction, 0)
	}
	for _, f := range l.Produce {
		n.stockpiles[f.Stockpile].Amount += f.Rate * dt * k * satisfaction
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// sanitizeDelta maps negative and non-finite elapsed times to zero.
func sanitizeDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	return dt
}
