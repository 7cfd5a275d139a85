package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chazu/vectorize/pkg/graph"
)

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// ErrSuperseded is returned when a newer evaluation started before this
// one finished.
var ErrSuperseded = errors.New("evaluation superseded by newer request")

// evalResult carries an evaluation's output across the goroutine boundary.
type evalResult struct {
	graph  *graph.DesignGraph
	errors []EvalError
	err    error
}

// waitWithTimeout waits for ch, giving up after EvalTimeout or when ctx
// is done. Results whose generation is no longer current are discarded.
//
// On timeout the evaluating goroutine may still be running; its result
// lands in the buffered channel and is dropped.
func waitWithTimeout(
	ctx context.Context,
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*graph.DesignGraph, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, ErrSuperseded
		}
		return res.graph, res.errors, res.err

	case <-ctx.Done():
		return nil, nil, fmt.Errorf("evaluation cancelled: %w", ctx.Err())

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
