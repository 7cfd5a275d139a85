package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func evalSource(t *testing.T, source string) (nodes int, evalErrs []EvalError) {
	t.Helper()
	g, evalErrs, err := NewEngine().Evaluate(context.Background(), source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		if g != nil {
			t.Fatal("expected nil graph alongside eval errors")
		}
		return 0, evalErrs
	}
	if g == nil {
		t.Fatal("expected non-nil graph")
	}
	return g.NodeCount(), nil
}

func TestEvaluatePlainLisp(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  \n  "},
		{"arithmetic", "(+ 1 2)"},
		{"definitions", "(def x 10)\n(def y 20)\n(+ x y)"},
		{"comments", "; a comment\n(+ 1 2) ;; trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, evalErrs := evalSource(t, tt.source)
			if len(evalErrs) > 0 {
				t.Fatalf("unexpected eval errors: %v", evalErrs)
			}
			if nodes != 0 {
				t.Errorf("expected empty graph, got %d nodes", nodes)
			}
		})
	}
}

func TestEvaluateUserErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unmatched paren", "(+ 1 2"},
		{"undefined symbol", "(+ 1 undefined-symbol)"},
		{"error on second line", "(+ 1 2)\n(+ 3"},
		{"unknown part", `(place (part "nope"))`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, evalErrs := evalSource(t, tt.source)
			if len(evalErrs) == 0 {
				t.Fatal("expected at least one eval error")
			}
			if evalErrs[0].Message == "" {
				t.Error("eval error message should not be empty")
			}
		})
	}
}

func TestEvalErrorImplementsError(t *testing.T) {
	var err error = EvalError{Line: 5, Message: "something went wrong"}
	if s := err.Error(); !strings.Contains(s, "line 5") || !strings.Contains(s, "something went wrong") {
		t.Errorf("Error() = %q, want line and message", s)
	}

	if s := (EvalError{Message: "no location"}).Error(); strings.Contains(s, "line") {
		t.Errorf("Error() with no line should not contain 'line', got: %s", s)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	eng := NewEngine()
	source := `(defpart "a" (board :length 10 :width 10 :thickness 1))
(place (part "a") :at (vec3 1 2 3))`

	var first []string
	for i := 0; i < 5; i++ {
		g, evalErrs, err := eng.Evaluate(context.Background(), source)
		if err != nil || len(evalErrs) > 0 {
			t.Fatalf("iteration %d: err=%v evalErrs=%v", i, err, evalErrs)
		}
		var ids []string
		for _, r := range g.Roots {
			ids = append(ids, r.String())
		}
		if i == 0 {
			first = ids
			continue
		}
		if strings.Join(ids, ",") != strings.Join(first, ",") {
			t.Errorf("iteration %d: roots %v differ from %v", i, ids, first)
		}
	}
}

func TestEvaluateCancelled(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(1)
	ch := make(chan evalResult) // never sends

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := waitWithTimeout(ctx, ch, 1, &mu, &gen)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEvaluateTimeout(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(1)
	ch := make(chan evalResult) // never sends

	done := make(chan error, 1)
	go func() {
		_, _, err := waitWithTimeout(context.Background(), ch, 1, &mu, &gen)
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "timed out") {
			t.Fatalf("expected timeout error, got %v", err)
		}
	case <-time.After(EvalTimeout + 2*time.Second):
		t.Fatal("test itself timed out waiting for evaluation timeout")
	}
}

func TestEvaluateGenerationDiscardsStale(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(2)

	ch := make(chan evalResult, 1)
	ch <- evalResult{}

	_, _, err := waitWithTimeout(context.Background(), ch, 1, &mu, &gen)
	if !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}
}

func TestParseZygomysError(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantLine int
		wantMsg  string
	}{
		{"error on line format", "Error on line 5: unexpected token\n", 5, "unexpected token"},
		{"no line info", "some generic error", 0, "some generic error"},
		{"lowercase", "error on line 12: missing paren", 12, "missing paren"},
		{"short form", "line 3: bad thing", 3, "bad thing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := parseZygomysError(errors.New(tt.msg))
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %d", len(errs))
			}
			if errs[0].Line != tt.wantLine {
				t.Errorf("line = %d, want %d", errs[0].Line, tt.wantLine)
			}
			if !strings.Contains(errs[0].Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", errs[0].Message, tt.wantMsg)
			}
		})
	}
}
