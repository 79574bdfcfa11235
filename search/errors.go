package search

import "errors"

var (
	// ErrBackendUnavailable means the requested evaluator cannot run on this
	// machine. Probe with BackendAuto recovers from it.
	ErrBackendUnavailable = errors.New("compute backend unavailable")

	// ErrInvalidSettings is returned before any work starts when the search
	// range, batch or result cache make no sense.
	ErrInvalidSettings = errors.New("invalid search settings")
)
