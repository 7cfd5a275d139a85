// Package engine evaluates design source in a sandboxed zygomys
// interpreter and produces the DesignGraph it describes.
package engine

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/vectorize/pkg/graph"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError is a non-fatal problem in user code, such as a parse error
// or a failing builtin.
type EvalError struct {
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	Message string `json:"message"`
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates design source. It is safe for concurrent use; every
// evaluation runs in a fresh sandbox so results depend only on the source.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs source and returns the graph it builds.
//
//   - On success: graph, nil, nil
//   - On parse or runtime failure in user code: nil, eval errors, nil
//   - On timeout, cancellation, panic or a superseding call: nil, nil, error
func (e *Engine) Evaluate(ctx context.Context, source string) (*graph.DesignGraph, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		g, evalErrs, err := evaluate(source)
		ch <- evalResult{graph: g, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ctx, ch, gen, &e.mu, &e.generation)
}

// evaluate performs one evaluation in a fresh sandbox.
func evaluate(source string) (*graph.DesignGraph, []EvalError, error) {
	g := graph.New()
	if strings.TrimSpace(source) == "" {
		return g, nil, nil
	}

	// The sandbox keeps user code away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, g)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}
	return g, nil, nil
}

// linePattern matches zygomys messages of the form "Error on line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches "line N: ..." messages.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError turns a zygomys error into EvalErrors, keeping the
// line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
