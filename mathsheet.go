// Package mathsheet generates printable arithmetic worksheets: addition and
// subtraction drills built from operand patterns, and number sequences with
// gaps to fill in.
package mathsheet

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/orchestrator"
	"github.com/goliatone/go-mathsheet/pkg/render"
	"github.com/goliatone/go-mathsheet/pkg/renderers/html"
)

// RenderOptions describes per-request document settings.
type RenderOptions = render.RenderOptions

// Worksheet is the laid out, renderer independent worksheet.
type Worksheet = model.Worksheet

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateArithmetic builds an add-minus worksheet from cfg and the operand
// pattern, and renders it with the named renderer. An empty pattern keeps
// cfg.Operands.
func GenerateArithmetic(ctx context.Context, cfg model.GenerationConfig, operandPattern, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Arithmetic: &orchestrator.ArithmeticRequest{Config: cfg, Pattern: operandPattern},
		Renderer:   rendererName,
	})
}

// GenerateMissingNumbers builds a missing-number worksheet and renders it with
// the named renderer.
func GenerateMissingNumbers(ctx context.Context, cfg model.SequenceConfig, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Sequence: &cfg,
		Renderer: rendererName,
	})
}

// EmbeddedTemplates exposes the built-in html renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
