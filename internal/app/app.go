// Package app runs the vectorize pipeline: design source is evaluated to
// a graph, validated, built into an entity tree, and analyzed into a
// catalog of flat parts.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/chazu/vectorize/internal/config"
	"github.com/chazu/vectorize/pkg/assembly"
	"github.com/chazu/vectorize/pkg/engine"
	"github.com/chazu/vectorize/pkg/entity"
	"github.com/chazu/vectorize/pkg/geom"
	"github.com/chazu/vectorize/pkg/graph"
	"github.com/chazu/vectorize/pkg/kernel"
	"github.com/chazu/vectorize/pkg/kernel/sdfx"
	"github.com/chazu/vectorize/pkg/parts"
	"github.com/chazu/vectorize/pkg/scene"
)

// App holds the long-lived pipeline pieces.
type App struct {
	cfg    config.Config
	log    zerolog.Logger
	engine *engine.Engine
	kernel kernel.Kernel
}

// New creates an App with a fresh engine and the sdfx kernel.
func New(cfg config.Config, log zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		log:    log,
		engine: engine.NewEngine(),
		kernel: sdfx.New(),
	}
}

// Options select what Vectorize analyzes.
type Options struct {
	// Thickness overrides the configured stock thickness when positive.
	Thickness float64
	// Select names the design nodes to analyze instead of the roots.
	Select []string
}

// ErrorData is a JSON-friendly error or warning.
type ErrorData struct {
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	Node    string `json:"node,omitempty"`
	Message string `json:"message"`
}

// PartData describes one part of the catalog.
type PartData struct {
	Name string `json:"name"`
	// Axis and Thickness are empty for parts without an orientation.
	Axis       string       `json:"axis,omitempty"`
	Thickness  float64      `json:"thickness,omitempty"`
	Candidates int          `json:"candidates"`
	Dimensions []float64    `json:"dimensions"`
	Outline    [][2]float64 `json:"outline"`
}

// Result is the outcome of Vectorize. Slices are never nil.
type Result struct {
	Parts    []PartData  `json:"parts"`
	Invalid  []PartData  `json:"invalid"`
	Errors   []ErrorData `json:"errors"`
	Warnings []ErrorData `json:"warnings"`
}

func newResult() Result {
	return Result{
		Parts:    []PartData{},
		Invalid:  []PartData{},
		Errors:   []ErrorData{},
		Warnings: []ErrorData{},
	}
}

// Valid reports whether the run succeeded and every part is oriented.
func (r Result) Valid() bool {
	return len(r.Errors) == 0 && len(r.Invalid) == 0
}

// Vectorize evaluates source and lists the parts cut from stock of the
// chosen thickness. Each oriented part's faces are painted with the
// configured material.
func (a *App) Vectorize(ctx context.Context, source string, opts Options) Result {
	result := newResult()

	thickness := a.cfg.Thickness
	if opts.Thickness > 0 {
		thickness = opts.Thickness
	}
	if thickness <= 0 {
		result.Errors = append(result.Errors, ErrorData{Message: config.ErrNoThickness.Error()})
		return result
	}

	sel, ok := a.build(ctx, source, opts.Select, &result.Errors, &result.Warnings)
	if !ok {
		return result
	}

	list := parts.New(thickness, assembly.New(sel))
	for _, p := range list.Parts() {
		pd := partData(p)
		result.Parts = append(result.Parts, pd)
		if !p.Valid() {
			result.Invalid = append(result.Invalid, pd)
			continue
		}
		p.Orientation().Colorize(a.cfg.Material)
	}

	a.log.Info().
		Float64("thickness", thickness).
		Int("parts", len(result.Parts)).
		Int("invalid", len(result.Invalid)).
		Msg("parts catalog built")
	return result
}

// partData converts a catalog part for output.
func partData(p *parts.Part) PartData {
	pd := PartData{
		Name:       p.Name(),
		Candidates: len(p.Orientations()),
		Dimensions: []float64{},
		Outline:    [][2]float64{},
	}
	f, ok := p.Face()
	if !ok {
		return pd
	}
	if axis, ok := p.Axis(); ok {
		pd.Axis = axis.String()
	}
	pd.Thickness = p.Orientation().Distance()
	pd.Dimensions = f.Dimensions()
	pd.Outline = lo.Map(f.Flatten(), func(pt geom.Point, _ int) [2]float64 {
		return [2]float64{geom.Round(pt.X), geom.Round(pt.Y)}
	})
	return pd
}

// build evaluates, validates and builds the selected entities. It
// appends findings to errs and warnings and reports whether the
// pipeline produced a selection.
func (a *App) build(ctx context.Context, source string, selectNames []string, errs, warnings *[]ErrorData) (*entity.Selection, bool) {
	g, ok := a.load(ctx, source, errs, warnings)
	if !ok {
		return nil, false
	}

	sel, err := scene.Build(g, a.kernel, scene.Options{
		Select:   selectNames,
		Segments: a.cfg.Segments,
		Logger:   a.log,
	})
	if err != nil {
		a.log.Error().Err(err).Msg("scene build failed")
		*errs = append(*errs, ErrorData{Message: fmt.Sprintf("scene build failed: %v", err)})
		return nil, false
	}
	a.log.Debug().Int("entities", sel.Entities.Len()).Msg("scene built")
	return sel, true
}

// load evaluates source and runs every validation tier.
func (a *App) load(ctx context.Context, source string, errs, warnings *[]ErrorData) (*graph.DesignGraph, bool) {
	g, evalErrs, err := a.engine.Evaluate(ctx, source)
	if err != nil {
		a.log.Error().Err(err).Msg("evaluation failed")
		*errs = append(*errs, ErrorData{Message: err.Error()})
		return nil, false
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			*errs = append(*errs, ErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
		}
		return nil, false
	}

	res := graph.ValidateAll(g)
	for _, w := range res.Warnings {
		*warnings = append(*warnings, ErrorData{Node: nodeName(g, w.NodeID), Message: w.Message})
	}
	for _, e := range res.Errors {
		*errs = append(*errs, ErrorData{Node: nodeName(g, e.NodeID), Message: e.Message})
	}
	if !res.OK() {
		a.log.Warn().Int("errors", len(res.Errors)).Msg("design failed validation")
		return nil, false
	}
	return g, true
}

// nodeName returns a printable name for id, or "" for graph-level
// findings.
func nodeName(g *graph.DesignGraph, id graph.NodeID) string {
	if id.IsZero() {
		return ""
	}
	if n := g.Get(id); n != nil {
		return n.DisplayName()
	}
	return id.Short()
}
