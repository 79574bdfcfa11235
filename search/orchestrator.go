package search

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"NumberChains/letters"
)

// NoMatch is the value of Result.Best when nothing was found.
const NoMatch = math.MaxInt64

// MaxBatchSize caps the scratch buffer at 1.6 GB.
const MaxBatchSize = 200_000_000

var hundred = decimal.NewFromInt(100)

// Settings fixes what one search looks for.
type Settings struct {
	Min         int64 // first candidate
	Max         int64 // one past the last candidate
	BatchSize   int64
	Target      int32 // chain length to look for
	Punctuation bool
	StopAtFirst bool // stop after the first batch that has a match
	CacheSize   int  // matches kept per batch
}

// Validate rejects settings that cannot describe a search.
func (s Settings) Validate() error {
	switch {
	case s.Min < 0:
		return fmt.Errorf("%w: min %d is negative", ErrInvalidSettings, s.Min)
	case s.Min >= s.Max:
		return fmt.Errorf("%w: min %d is not below max %d", ErrInvalidSettings, s.Min, s.Max)
	case s.BatchSize <= 0:
		return fmt.Errorf("%w: batch size %d", ErrInvalidSettings, s.BatchSize)
	case s.BatchSize > MaxBatchSize:
		return fmt.Errorf("%w: batch size %d is above %d", ErrInvalidSettings, s.BatchSize, MaxBatchSize)
	case s.CacheSize <= 0:
		return fmt.Errorf("%w: result cache size %d", ErrInvalidSettings, s.CacheSize)
	case s.Target <= 0:
		return fmt.Errorf("%w: chain length %d", ErrInvalidSettings, s.Target)
	}
	return nil
}

// Orchestrator walks the range one window at a time. Windows never overlap
// and each is finished before the next starts. An Orchestrator runs once.
type Orchestrator struct {
	settings  Settings
	evaluator Evaluator
	logger    *zap.Logger
	runID     string

	scratch  ScratchBuffer
	results  *Collector
	readback ResultBuffer

	state       State
	window      Window // next window, before clipping
	originalMin int64
	max         int64
	bestMatch   int64
	found       bool
}

// New checks the settings and the letter tables, and allocates the scratch and
// result buffers. The scratch buffer is never larger than the range.
func New(settings Settings, ev Evaluator, logger *zap.Logger) (*Orchestrator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: no evaluator", ErrInvalidSettings)
	}
	if err := letters.VerifyTables(settings.Punctuation); err != nil {
		return nil, fmt.Errorf("letter tables: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()
	return &Orchestrator{
		settings:    settings,
		evaluator:   ev,
		logger:      logger.With(zap.String("run_id", runID)),
		runID:       runID,
		scratch:     NewScratchBuffer(min(settings.BatchSize, settings.Max-settings.Min)),
		results:     NewCollector(settings.CacheSize),
		readback:    NewResultBuffer(settings.CacheSize),
		state:       Scanning,
		window:      Window{Start: settings.Min, Size: settings.BatchSize},
		originalMin: settings.Min,
		max:         settings.Max,
		bestMatch:   NoMatch,
	}, nil
}

// State reports where the run is.
func (o *Orchestrator) State() State {
	return o.state
}

// RunID identifies this run in logs and reports.
func (o *Orchestrator) RunID() string {
	return o.runID
}

// Run searches until the range is exhausted, or until the first batch with a
// match when StopAtFirst is set. Cancelling ctx stops the run between batches;
// the partial result is returned along with ctx.Err().
func (o *Orchestrator) Run(ctx context.Context, obs Observer) (Result, error) {
	if o.state == Done {
		return Result{}, fmt.Errorf("%w: search already ran", ErrInvalidSettings)
	}
	t0 := time.Now()
	res := Result{
		RunID:       o.runID,
		Backend:     o.evaluator.Name(),
		ChainLength: o.settings.Target,
		Punctuation: o.settings.Punctuation,
		Min:         o.originalMin,
		Max:         o.max,
		Percent:     decimal.Zero,
	}

	o.logger.Info("search started",
		zap.String("backend", o.evaluator.Name()),
		zap.Int("parallelism", o.evaluator.Parallelism()),
		zap.Int64("min", o.originalMin),
		zap.Int64("max", o.max),
		zap.Int64("batch", o.settings.BatchSize),
		zap.Int32("chain_length", o.settings.Target),
		zap.Bool("punctuation", o.settings.Punctuation),
		zap.Bool("stop_at_first", o.settings.StopAtFirst),
	)

	for o.state != Done {
		if err := ctx.Err(); err != nil {
			o.state = Done
			res = o.finish(res, t0)
			o.logger.Warn("search cancelled", zap.Int64("next", o.window.Start), zap.Error(err))
			return res, err
		}

		w := o.window.Clip(o.max)
		matches, err := o.batch(w)
		if err != nil {
			o.state = Done
			return o.finish(res, t0), err
		}

		res.Batches++
		res.Candidates += w.Size
		res.Matches += int64(len(matches))
		res.Dropped += o.results.Dropped()
		res.Percent = o.percent(w.End())

		if o.found && o.state == Scanning {
			o.state = FoundAndContinuing
		}
		if o.found && o.settings.StopAtFirst {
			o.state = Done
			res.Stopped = true
		} else if o.max-o.window.Start <= o.window.Size {
			o.state = Done
		} else {
			o.window = o.window.Next()
		}

		if obs != nil {
			obs.Batch(Progress{
				Batch:   res.Batches,
				Window:  w,
				State:   o.state,
				Matches: matches,
				Dropped: o.results.Dropped(),
				Percent: res.Percent,
				Elapsed: time.Since(t0),
			})
		}
	}

	res = o.finish(res, t0)
	if res.Found {
		o.logger.Info("search finished", zap.Int64("best", res.Best), zap.Int64("batches", res.Batches), zap.Duration("elapsed", res.Elapsed))
	} else {
		o.logger.Info("search finished without a match", zap.Int64("batches", res.Batches), zap.Duration("elapsed", res.Elapsed))
	}
	return res, nil
}

// batch evaluates and compacts one window, reads the matches back and folds
// them into the running minimum. The returned slice aliases the readback
// buffer.
func (o *Orchestrator) batch(w Window) ([]uint64, error) {
	if err := o.evaluator.Evaluate(w, o.settings.Target, o.settings.Punctuation, o.scratch); err != nil {
		return nil, fmt.Errorf("evaluate %d..%d: %w", w.Start, w.End(), err)
	}
	o.results.Reset()
	if err := o.evaluator.Compact(o.scratch, w.Size, o.results); err != nil {
		return nil, fmt.Errorf("compact %d..%d: %w", w.Start, w.End(), err)
	}
	matches := o.readback[:o.results.Fill(o.readback)]

	for _, v := range matches {
		o.found = true
		if int64(v) < o.bestMatch {
			o.bestMatch = int64(v)
		}
	}
	if o.results.Dropped() > 0 {
		o.logger.Debug("result cache overflow",
			zap.Int64("start", w.Start),
			zap.Int("kept", o.results.Len()),
			zap.Int64("dropped", o.results.Dropped()),
		)
	}
	o.logger.Debug("batch done",
		zap.Int64("start", w.Start),
		zap.Int64("size", w.Size),
		zap.Int("matches", len(matches)),
	)
	return matches, nil
}

// percent of [originalMin, max) that lies before covered
func (o *Orchestrator) percent(covered int64) decimal.Decimal {
	done := decimal.NewFromInt(covered - o.originalMin)
	total := decimal.NewFromInt(o.max - o.originalMin)
	return done.Div(total).Mul(hundred)
}

func (o *Orchestrator) finish(res Result, t0 time.Time) Result {
	res.Found = o.found
	res.Best = o.bestMatch
	res.Elapsed = time.Since(t0)
	return res
}
