/*
Package stats reports the progress and the outcome of a mining run.

The miners never print; they call a Reporter once per phase and once at the
end of the run. Reporters are provided for logrus (LogReporter) and
Prometheus (PrometheusReporter), and Multi fans out to several of them.
*/
package stats

import (
	"time"
)

// Phases reported by the miners
const (
	PhaseScan   = "scan"
	PhaseMatrix = "matrix"
	PhaseMine   = "mine"
)

// Summary describes a finished mining run
type Summary struct {
	Representation string
	Transactions   int
	MinsupRelative int
	FrequentItems  int
	Closed         int
	Joins          int
	MatrixPruned   int
	Elapsed        time.Duration
	PeakMemory     uint64
}

type Reporter interface {
	// PhaseDone is called when _phase_ completed after _d_
	PhaseDone(phase string, d time.Duration)
	// RunDone is called once with the summary of the run
	RunDone(summary Summary)
}

// Nop discards everything
type Nop struct{}

func (Nop) PhaseDone(string, time.Duration) {}

func (Nop) RunDone(Summary) {}

// Multi forwards to each of its reporters, in order
type Multi []Reporter

func (m Multi) PhaseDone(phase string, d time.Duration) {
	for _, r := range m {
		r.PhaseDone(phase, d)
	}
}

func (m Multi) RunDone(summary Summary) {
	for _, r := range m {
		r.RunDone(summary)
	}
}
