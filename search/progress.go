package search

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is where an Orchestrator is in its run.
type State int

const (
	Scanning State = iota
	FoundAndContinuing
	Done
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case FoundAndContinuing:
		return "found"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Progress describes one finished batch.
type Progress struct {
	Batch   int64
	Window  Window
	State   State
	Matches []uint64 // valid until the next batch starts
	Dropped int64    // matches beyond the result cache in this batch
	Percent decimal.Decimal
	Elapsed time.Duration
}

// Rate is the number of candidates examined per second so far.
func (p Progress) Rate(originalMin int64) float64 {
	seconds := p.Elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(p.Window.End()-originalMin) / seconds
}

// Observer receives a Progress after every batch. It is called on the
// goroutine running the search and must not hold on to Matches.
type Observer interface {
	Batch(p Progress)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(p Progress)

func (f ObserverFunc) Batch(p Progress) { f(p) }

// Result is the outcome of a finished search.
type Result struct {
	RunID       string          `json:"run_id" yaml:"run_id"`
	Backend     string          `json:"backend" yaml:"backend"`
	Found       bool            `json:"found" yaml:"found"`
	Best        int64           `json:"best" yaml:"best"`
	ChainLength int32           `json:"chain_length" yaml:"chain_length"`
	Punctuation bool            `json:"punctuation" yaml:"punctuation"`
	Min         int64           `json:"min" yaml:"min"`
	Max         int64           `json:"max" yaml:"max"`
	Batches     int64           `json:"batches" yaml:"batches"`
	Candidates  int64           `json:"candidates" yaml:"candidates"`
	Matches     int64           `json:"matches" yaml:"matches"`
	Dropped     int64           `json:"dropped" yaml:"dropped"`
	Percent     decimal.Decimal `json:"percent" yaml:"percent"` // covered through the last window, also when stopped early
	Stopped     bool            `json:"stopped_early" yaml:"stopped_early"`
	Elapsed     time.Duration   `json:"elapsed" yaml:"elapsed"`
}
