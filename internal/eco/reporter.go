package eco

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultReportInterval is the number of ticks between periodic log reports.
const DefaultReportInterval = 150

// Reading is one stockpile's state as seen by the Reporter.
type Reading struct {
	ID       StockpileID
	Label    string
	Amount   float64
	Capacity *float64 // Effective limit; nil when unbounded
}

// Recorder receives the periodic readings, e.g. to keep a history.
type Recorder interface {
	Record(tick uint64, readings []Reading) error
}

// Readout is the text buffer the display surface shows. The Reporter
// rewrites it every tick.
type Readout struct {
	text string
}

// String returns the current rendering.
func (r *Readout) String() string {
	return r.text
}

// Set replaces the rendering.
func (r *Readout) Set(text string) {
	r.text = text
}

// Reporter renders the stockpile store. It never mutates the network.
type Reporter struct {
	logger   *log.Logger
	readout  *Readout
	recorder Recorder
	interval int
	count    int
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithInterval sets the number of ticks between log reports.
// Values below 1 keep the default.
func WithInterval(ticks int) ReporterOption {
	return func(r *Reporter) {
		if ticks > 0 {
			r.interval = ticks
		}
	}
}

// WithRecorder attaches a recorder that receives every periodic report.
func WithRecorder(rec Recorder) ReporterOption {
	return func(r *Reporter) {
		r.recorder = rec
	}
}

// NewReporter creates a reporter writing periodic lines to logger and the
// per-tick rendering to readout. Either may be nil.
func NewReporter(logger *log.Logger, readout *Readout, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		logger:   logger,
		readout:  readout,
		interval: DefaultReportInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Interval returns the number of ticks between log reports.
func (r *Reporter) Interval() int {
	return r.interval
}

// Report observes the network after a tick. The first call and every
// interval-th call after it emit log lines; every call refreshes the readout.
func (r *Reporter) Report(tick uint64, n *Network) {
	readings := Readings(n)

	if r.count == 0 {
		r.emit(tick, readings)
	}
	r.count++
	if r.count >= r.interval {
		r.count = 0
	}

	if r.readout != nil {
		r.readout.Set(FormatReadout(readings))
	}
}

func (r *Reporter) emit(tick uint64, readings []Reading) {
	if r.logger != nil {
		r.logger.Info("", "tick", tick)
		for _, rd := range readings {
			r.logger.Info(FormatLogLine(rd))
		}
	}
	if r.recorder != nil {
		if err := r.recorder.Record(tick, readings); err != nil && r.logger != nil {
			r.logger.Warn("could not record readings", "tick", tick, "error", err)
		}
	}
}

// Readings snapshots every stockpile in id order.
func Readings(n *Network) []Reading {
	out := make([]Reading, len(n.stockpiles))
	for i := range n.stockpiles {
		id := StockpileID(i)
		rd := Reading{
			ID:     id,
			Label:  n.Label(id),
			Amount: n.stockpiles[i].Amount,
		}
		if limit, ok := n.stockpiles[i].Limit(); ok {
			rd.Capacity = Float(limit)
		}
		out[i] = rd
	}
	return out
}

// FormatLogLine renders a reading as "<label> : <amount>" with the amount
// in shortest round-trip form.
func FormatLogLine(rd Reading) string {
	return rd.Label + " : " + strconv.FormatFloat(rd.Amount, 'f', -1, 64)
}

// FormatReadout renders readings as newline-joined "<label> : <amount>"
// lines with two decimals.
func FormatReadout(readings []Reading) string {
	lines := make([]string, len(readings))
	for i, rd := range readings {
		lines[i] = fmt.Sprintf("%s : %.2f", rd.Label, rd.Amount)
	}
	return strings.Join(lines, "\n")
}
