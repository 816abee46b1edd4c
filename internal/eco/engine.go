package eco

// Engine advances a Network through the fixed per-tick pipeline.
// Tick must be called from a single goroutine.
type Engine struct {
	net      *Network
	reporter *Reporter
	ticks    uint64
}

// NewEngine wraps a network. A nil reporter disables reporting.
func NewEngine(n *Network, r *Reporter) *Engine {
	return &Engine{net: n, reporter: r}
}

// Network returns the simulated network.
func (e *Engine) Network() *Network {
	return e.net
}

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Tick advances the simulation by dt seconds: production, cap enforcement,
// conversion, then reporting. Caps run before conversion, so a converter may
// leave a stockpile above its cap until the next tick.
func (e *Engine) Tick(dt float64) {
	Produce(e.net, dt)
	EnforceCaps(e.net)
	Convert(e.net, dt)
	if e.reporter != nil {
		e.reporter.Report(e.ticks, e.net)
	}
	e.ticks++
}
