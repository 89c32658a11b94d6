package dtpgstats

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/dtpgcore/tpg/cnfsat"
)

// Outcome classifies which bucket a fault's SAT call landed in.
type Outcome int

const (
	Detected Outcome = iota
	Untestable
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Detected:
		return "Detected"
	case Untestable:
		return "Untestable"
	default:
		return "Aborted"
	}
}

type sample struct {
	conflicts, decisions, propagations, restarts float64
	wallNS                                       float64
}

// Summary reports the reduced statistics for one outcome class.
type Summary struct {
	Count            int
	MeanConflicts    float64
	StdDevConflicts  float64
	MedianWallNS     float64
	MeanWallNS       float64
	MeanDecisions    float64
	MeanPropagations float64
	MeanRestarts     float64
}

// Report accumulates samples per Outcome class and reduces them on request.
type Report struct {
	classes map[Outcome][]sample
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{classes: make(map[Outcome][]sample)}
}

// Record appends one fault's solver statistics to o's class.
func (r *Report) Record(o Outcome, s cnfsat.Stats, wall time.Duration) {
	r.classes[o] = append(r.classes[o], sample{
		conflicts:    float64(s.Conflicts),
		decisions:    float64(s.Decisions),
		propagations: float64(s.Propagations),
		restarts:     float64(s.Restarts),
		wallNS:       float64(wall.Nanoseconds()),
	})
}

// Summary reduces o's accumulated samples. A class with no samples returns
// the zero Summary (Count == 0).
func (r *Report) Summary(o Outcome) Summary {
	samples := r.classes[o]
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	conflicts := make([]float64, n)
	decisions := make([]float64, n)
	propagations := make([]float64, n)
	restarts := make([]float64, n)
	wall := make([]float64, n)
	for i, s := range samples {
		conflicts[i] = s.conflicts
		decisions[i] = s.decisions
		propagations[i] = s.propagations
		restarts[i] = s.restarts
		wall[i] = s.wallNS
	}
	sort.Float64s(wall)

	return Summary{
		Count:            n,
		MeanConflicts:    stat.Mean(conflicts, nil),
		StdDevConflicts:  stat.StdDev(conflicts, nil),
		MedianWallNS:     stat.Quantile(0.5, stat.Empirical, wall, nil),
		MeanWallNS:       stat.Mean(wall, nil),
		MeanDecisions:    stat.Mean(decisions, nil),
		MeanPropagations: stat.Mean(propagations, nil),
		MeanRestarts:     stat.Mean(restarts, nil),
	}
}

// Total returns the combined sample count across every class.
func (r *Report) Total() int {
	n := 0
	for _, s := range r.classes {
		n += len(s)
	}
	return n
}
