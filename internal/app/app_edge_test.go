package app

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

func TestE2EEmptySource(t *testing.T) {
	for _, source := range []string{"", "   \n\t  ", ";; only a comment\n"} {
		result := newTestApp(18).Vectorize(context.Background(), source, Options{})
		if len(result.Errors) != 0 || len(result.Warnings) != 0 || len(result.Parts) != 0 {
			t.Errorf("source %q: expected an empty result, got %+v", source, result)
		}
		if result.Parts == nil || result.Invalid == nil || result.Errors == nil || result.Warnings == nil {
			t.Errorf("source %q: slices should be non-nil", source)
		}
	}
}

func TestE2EEmptyResultMarshalsArrays(t *testing.T) {
	data, err := json.Marshal(newTestApp(18).Vectorize(context.Background(), "", Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("empty result should marshal arrays, got %s", data)
	}
}

func TestE2ESyntaxError(t *testing.T) {
	result := newTestApp(18).Vectorize(context.Background(), "(+ 1 2)\n(defpart \"test\"", Options{})
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one eval error for unmatched parens")
	}
	if result.Errors[0].Message == "" {
		t.Error("syntax error should have a non-empty message")
	}
	if len(result.Parts) != 0 {
		t.Errorf("expected 0 parts on syntax error, got %d", len(result.Parts))
	}
}

func TestE2EUndefinedPartReference(t *testing.T) {
	result := newTestApp(18).Vectorize(context.Background(), `
(defpart "shelf" (board :length 600 :width 300 :thickness 18))
(assembly "unit" (place (part "nonexistent")))
`, Options{})
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "nonexistent") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected error mentioning 'nonexistent', got: %v", result.Errors)
	}
}

func TestE2EBadDimensions(t *testing.T) {
	tests := []struct {
		name  string
		board string
	}{
		{"zero width", `(board :length 100 :width 0 :thickness 18)`},
		{"all zero", `(board)`},
		{"negative", `(board :length -100 :width 50 :thickness 18)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestApp(18).Vectorize(context.Background(),
				`(defpart "p" `+tt.board+`) (place (part "p"))`, Options{})
			if len(result.Errors) == 0 {
				t.Fatal("expected a validation error")
			}
			if result.Errors[0].Node != "p" {
				t.Errorf("error should name the part, got %q", result.Errors[0].Node)
			}
			if len(result.Parts) != 0 {
				t.Error("invalid designs should produce no parts")
			}
		})
	}
}

func TestE2ERapidEvaluation(t *testing.T) {
	app := newTestApp(18)
	source := `(defpart "s" (board :length 600 :width 300 :thickness 18)) (place (part "s"))`

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = app.Vectorize(context.Background(), source, Options{})
		}(i)
	}
	wg.Wait()

	// Superseded runs report an error; the others must be complete.
	complete := 0
	for _, r := range results {
		if len(r.Errors) > 0 {
			if !strings.Contains(r.Errors[0].Message, "superseded") {
				t.Errorf("unexpected error: %v", r.Errors)
			}
			continue
		}
		complete++
		if len(r.Parts) != 1 || r.Parts[0].Name != "s" {
			t.Errorf("unexpected parts: %v", partNames(r.Parts))
		}
	}
	if complete == 0 {
		t.Error("at least one evaluation should complete")
	}
}

func TestE2EFloatingPointDimensions(t *testing.T) {
	result := newTestApp(18.5).Vectorize(context.Background(), `
(defpart "veneer" (board :length 300.25 :width 120.75 :thickness 18.5))
(place (part "veneer") :at (vec3 0.1 0.2 0.3))
`, Options{})
	failOnErrors(t, result.Errors)
	if len(result.Parts) != 1 || result.Parts[0].Thickness != 18.5 {
		t.Fatalf("expected one 18.5 part, got %+v", result.Parts)
	}
	dims := result.Parts[0].Dimensions
	if len(dims) != 2 || dims[0] != 120.75 || dims[1] != 300.25 {
		t.Errorf("dimensions = %v, want [120.75 300.25]", dims)
	}
}

func TestE2ENestedArithmetic(t *testing.T) {
	result := newTestApp(18).Vectorize(context.Background(), `
(def width 600)
(def inner (- width (* 2 18)))
(defpart "shelf" (board :length inner :width 250 :thickness 18))
(place (part "shelf"))
`, Options{})
	failOnErrors(t, result.Errors)
	if len(result.Parts) != 1 || result.Parts[0].Dimensions[1] != 564 {
		t.Errorf("unexpected parts: %+v", result.Parts)
	}
}

func TestE2EHiddenPlacement(t *testing.T) {
	result := newTestApp(18).Vectorize(context.Background(), `
(defpart "a" (board :length 100 :width 50 :thickness 18))
(defpart "b" (board :length 100 :width 50 :thickness 18))
(assembly "pair" (place (part "a")) (place (part "b") :hidden true))
`, Options{})
	failOnErrors(t, result.Errors)
	if got := partNames(result.Parts); len(got) != 1 || got[0] != "a" {
		t.Errorf("parts = %v, want [a]", got)
	}
}

func TestE2EHiddenTopLevelPlacement(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"hidden flag", `
(defpart "a" (board :length 100 :width 50 :thickness 18))
(defpart "b" (board :length 100 :width 50 :thickness 18))
(place (part "a"))
(place (part "b") :hidden true)
`},
		{"hidden layer", `
(def ghost (layer "ghost" :visible false))
(defpart "a" (board :length 100 :width 50 :thickness 18))
(defpart "b" (board :length 100 :width 50 :thickness 18))
(place (part "a"))
(place (part "b") :layer ghost)
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestApp(18).Vectorize(context.Background(), tt.source, Options{})
			failOnErrors(t, result.Errors)
			if got := partNames(result.Parts); len(got) != 1 || got[0] != "a" {
				t.Errorf("parts = %v, want [a]", got)
			}
		})
	}
}
