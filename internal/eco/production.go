package eco

// Produce runs the production step: every pure producer adds
// rate * dt * floor(stack) to each of its targets. Contributions to a shared
// target are summed first and applied once.
func Produce(n *Network, dt float64) {
	dt = sanitizeDelta(dt)
	sums := make([]float64, len(n.stockpiles))
	touched := make([]bool, len(n.stockpiles))

	for _, id := range n.producers {
		l := &n.links[id]
		k := l.StackFactor()
		for _, f := range l.Produce {
			sums[f.Stockpile] += f.Rate * dt * k
			touched[f.Stockpile] = true
		}
	}

	for i := range n.stockpiles {
		if touched[i] {
			n.stockpiles[i].Amount += sums[i]
		}
	}
}
