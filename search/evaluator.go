// Package search sweeps a range of integers for values whose letter-count
// chain has a given length.
//
// Each window of the range goes through two stages. Evaluate fills a scratch
// buffer with one entry per candidate, and Compact gathers the matches from it
// into a small bounded collector. Both stages are provided by an Evaluator,
// either Sequential or Parallel. The two produce identical results.
package search

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"NumberChains/letters"
)

// Evaluator runs the two per-window stages. Evaluate must have written every
// entry of scratch[:w.Size] when it returns and Compact must push matches in
// candidate order.
type Evaluator interface {
	Name() string
	Parallelism() int
	Evaluate(w Window, target int32, punctuation bool, scratch ScratchBuffer) error
	Compact(scratch ScratchBuffer, n int64, out *Collector) error
}

// Sequential evaluates every candidate on the calling goroutine.
type Sequential struct{}

func (Sequential) Name() string     { return "cpu" }
func (Sequential) Parallelism() int { return 1 }

func (Sequential) Evaluate(w Window, target int32, punctuation bool, scratch ScratchBuffer) error {
	if err := checkWindow(w, scratch); err != nil {
		return err
	}
	evaluateSpan(scratch[:w.Size], uint64(w.Start), target, punctuation)
	return nil
}

func (Sequential) Compact(scratch ScratchBuffer, n int64, out *Collector) error {
	if n < 0 || n > int64(len(scratch)) {
		return fmt.Errorf("%w: compacting %d entries of a %d entry buffer", ErrInvalidSettings, n, len(scratch))
	}
	compactSpan(scratch[:n], out)
	return nil
}

// Parallel splits each window into one contiguous span per worker.
type Parallel struct {
	workers int
}

// NewParallel returns a Parallel evaluator with the given number of workers.
func NewParallel(workers int) (*Parallel, error) {
	if workers < 2 {
		return nil, fmt.Errorf("%w: parallel evaluation needs at least 2 workers, got %d", ErrBackendUnavailable, workers)
	}
	return &Parallel{workers: workers}, nil
}

func (p *Parallel) Name() string     { return fmt.Sprintf("cpu x%d", p.workers) }
func (p *Parallel) Parallelism() int { return p.workers }

func (p *Parallel) Evaluate(w Window, target int32, punctuation bool, scratch ScratchBuffer) error {
	if err := checkWindow(w, scratch); err != nil {
		return err
	}
	var g errgroup.Group
	g.SetLimit(p.workers)
	for _, s := range p.spans(w.Size) {
		s := s // per-iteration copy; module targets go 1.21
		g.Go(func() error {
			evaluateSpan(scratch[s.lo:s.hi], uint64(w.Start+s.lo), target, punctuation)
			return nil
		})
	}
	return g.Wait()
}

// Compact gathers each span into its own collector and then merges them in
// span order, so the result is the same as a single front to back scan.
func (p *Parallel) Compact(scratch ScratchBuffer, n int64, out *Collector) error {
	if n < 0 || n > int64(len(scratch)) {
		return fmt.Errorf("%w: compacting %d entries of a %d entry buffer", ErrInvalidSettings, n, len(scratch))
	}
	spans := p.spans(n)
	local := make([]*Collector, len(spans))
	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, s := range spans {
		i, s := i, s // per-iteration copy; module targets go 1.21
		local[i] = NewCollector(out.Cap())
		g.Go(func() error {
			compactSpan(scratch[s.lo:s.hi], local[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, c := range local {
		out.Merge(c)
	}
	return nil
}

type span struct {
	lo, hi int64
}

func (p *Parallel) spans(n int64) []span {
	width := (n + int64(p.workers) - 1) / int64(p.workers)
	spans := make([]span, 0, p.workers)
	for lo := int64(0); lo < n; lo += width {
		spans = append(spans, span{lo: lo, hi: min(lo+width, n)})
	}
	return spans
}

func checkWindow(w Window, scratch ScratchBuffer) error {
	if w.Start < 0 || w.Size < 0 || w.Size > int64(len(scratch)) {
		return fmt.Errorf("%w: window %+v does not fit a %d entry scratch buffer", ErrInvalidSettings, w, len(scratch))
	}
	return nil
}

// evaluateSpan is the per-candidate kernel. Every entry of dst is written.
func evaluateSpan(dst []uint64, start uint64, target int32, punctuation bool) {
	for i := range dst {
		candidate := start + uint64(i)
		var hit uint64
		if letters.ChainLength(candidate, punctuation) == target {
			hit = 1
		}
		dst[i] = hit * (candidate + 1)
	}
}

func compactSpan(src ScratchBuffer, out *Collector) {
	for i := range src {
		if v, ok := src.Match(i); ok {
			out.Push(v)
		}
	}
}
