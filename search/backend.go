package search

import (
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// BackendKind selects an Evaluator.
type BackendKind string

const (
	BackendAuto       BackendKind = "auto"
	BackendParallel   BackendKind = "parallel"
	BackendSequential BackendKind = "sequential"
)

// numCPU is swapped out by tests.
var numCPU = runtime.NumCPU

// ParseBackend accepts auto, parallel or sequential in any case.
func ParseBackend(s string) (BackendKind, error) {
	switch kind := BackendKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case BackendAuto, BackendParallel, BackendSequential:
		return kind, nil
	case "":
		return BackendAuto, nil
	default:
		return "", fmt.Errorf("%w: unknown backend %q", ErrInvalidSettings, s)
	}
}

// Probe acquires an Evaluator of the requested kind. A workers value of zero
// or less means one worker per CPU. BackendAuto prefers Parallel and falls back
// to Sequential when the parallel backend is unavailable; the fallback is
// logged, not returned.
func Probe(kind BackendKind, workers int, logger *zap.Logger) (Evaluator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch kind {
	case BackendSequential:
		return Sequential{}, nil
	case BackendParallel:
		return probeParallel(workers)
	case BackendAuto, "":
		ev, err := probeParallel(workers)
		if err != nil {
			logger.Warn("parallel backend unavailable, using sequential evaluation", zap.Error(err))
			return Sequential{}, nil
		}
		return ev, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidSettings, kind)
	}
}

func probeParallel(workers int) (Evaluator, error) {
	cpus := numCPU()
	if cpus < 2 {
		return nil, fmt.Errorf("%w: %d cpu available", ErrBackendUnavailable, cpus)
	}
	if workers <= 0 {
		workers = cpus
	}
	return NewParallel(workers)
}
