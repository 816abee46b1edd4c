package eco

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

type fakeRecorder struct {
	ticks []uint64
	err   error
}

func (f *fakeRecorder) Record(tick uint64, readings []Reading) error {
	f.ticks = append(f.ticks, tick)
	return f.err
}

func TestReporterCadence(t *testing.T) {
	n, _ := sampleNetwork(t)
	var buf bytes.Buffer
	rec := &fakeRecorder{}
	r := NewReporter(log.New(&buf), nil, WithInterval(3), WithRecorder(rec))

	for tick := uint64(0); tick < 7; tick++ {
		r.Report(tick, n)
	}

	expected := []uint64{0, 3, 6}
	if len(rec.ticks) != len(expected) {
		t.Fatalf("recorded ticks = %v, expected %v", rec.ticks, expected)
	}
	for i := range expected {
		if rec.ticks[i] != expected[i] {
			t.Errorf("recorded ticks[%d] = %d, expected %d", i, rec.ticks[i], expected[i])
		}
	}
	if got := strings.Count(buf.String(), "Mass : 0"); got != 3 {
		t.Errorf("log lines for Mass = %d, expected 3", got)
	}
}

func TestReporterLogLines(t *testing.T) {
	n, reg := sampleNetwork(t)
	n.Stockpile(mustLookup(t, reg, "Cooling")).Amount = 89.8
	var buf bytes.Buffer
	r := NewReporter(log.New(&buf), nil)

	r.Report(0, n)

	out := buf.String()
	for _, expected := range []string{"Cooling : 89.8", "Energy : 100", "Mass : 0"} {
		if !strings.Contains(out, expected) {
			t.Errorf("log output missing %q:\n%s", expected, out)
		}
	}
}

func TestReporterReadoutEveryTick(t *testing.T) {
	n, reg := sampleNetwork(t)
	readout := &Readout{}
	r := NewReporter(nil, readout, WithInterval(100))

	r.Report(0, n)
	n.Stockpile(mustLookup(t, reg, "Mass")).Amount = 1.005
	r.Report(1, n)

	expected := "Cooling : 100.00\nEnergy : 100.00\nMass : 1.00"
	if got := readout.String(); got != expected {
		t.Errorf("readout = %q, expected %q", got, expected)
	}
}

func TestReporterDoesNotMutate(t *testing.T) {
	n, _ := sampleNetwork(t)
	before := Readings(n)

	NewReporter(nil, &Readout{}).Report(0, n)

	after := Readings(n)
	for i := range before {
		if before[i].Amount != after[i].Amount {
			t.Errorf("stockpile %d changed: %v -> %v", i, before[i].Amount, after[i].Amount)
		}
	}
}

func TestReporterRecorderFailureIsWarning(t *testing.T) {
	n, _ := sampleNetwork(t)
	var buf bytes.Buffer
	rec := &fakeRecorder{err: errors.New("disk full")}
	readout := &Readout{}
	r := NewReporter(log.New(&buf), readout, WithRecorder(rec))

	r.Report(0, n)

	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("expected warning with recorder error, got:\n%s", buf.String())
	}
	if readout.String() == "" {
		t.Error("readout should still be written after recorder failure")
	}
}

func TestReadingsCapacity(t *testing.T) {
	b := NewBuilder(nil)
	b.AddStockpile(Stockpile{Label: "Energy", Amount: 1, Capacity: Float(200), Stack: Float(2.5)})
	b.AddStockpile(Stockpile{Label: "Mass"})
	n := b.MustBuild()

	rs := Readings(n)
	if rs[0].Capacity == nil || *rs[0].Capacity != 400 {
		t.Errorf("Energy capacity = %v, expected 400", rs[0].Capacity)
	}
	if rs[1].Capacity != nil {
		t.Errorf("Mass capacity = %v, expected nil", *rs[1].Capacity)
	}
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	r := NewReporter(nil, nil, WithInterval(0))
	if r.Interval() != DefaultReportInterval {
		t.Errorf("Interval() = %d, expected %d", r.Interval(), DefaultReportInterval)
	}
}
