package app

import (
	"context"

	"github.com/samber/lo"

	"github.com/chazu/vectorize/pkg/assembly"
)

// MirrorData describes one mirrored face pair.
type MirrorData struct {
	Axis     string    `json:"axis"`
	Distance float64   `json:"distance"`
	Faces    [2]string `json:"faces"`
}

// GraphicData describes a graphic leaf and every pair it holds.
type GraphicData struct {
	Name    string       `json:"name"`
	Faces   int          `json:"faces"`
	Mirrors []MirrorData `json:"mirrors"`
}

// GraphicsResult is the outcome of Graphics. Slices are never nil.
type GraphicsResult struct {
	Graphics []GraphicData `json:"graphics"`
	Errors   []ErrorData   `json:"errors"`
	Warnings []ErrorData   `json:"warnings"`
}

// Graphics lists the graphic leaves of the selection with all of their
// mirrored pairs, at any thickness.
func (a *App) Graphics(ctx context.Context, source string, selectNames []string) GraphicsResult {
	result := GraphicsResult{
		Graphics: []GraphicData{},
		Errors:   []ErrorData{},
		Warnings: []ErrorData{},
	}
	sel, ok := a.build(ctx, source, selectNames, &result.Errors, &result.Warnings)
	if !ok {
		return result
	}

	for _, g := range assembly.New(sel).Graphics() {
		result.Graphics = append(result.Graphics, GraphicData{
			Name:  g.Name(),
			Faces: len(g.Classification().Faces),
			Mirrors: lo.Map(g.Mirrors(), func(m *assembly.MirroredFaces, _ int) MirrorData {
				axis, _ := m.Axis()
				return MirrorData{
					Axis:     axis.String(),
					Distance: m.Distance(),
					Faces:    [2]string{m.A.ID(), m.B.ID()},
				}
			}),
		})
	}
	return result
}

// Check evaluates source and runs every validation tier without
// building geometry. Only Errors and Warnings are filled.
func (a *App) Check(ctx context.Context, source string) Result {
	result := newResult()
	a.load(ctx, source, &result.Errors, &result.Warnings)
	return result
}
