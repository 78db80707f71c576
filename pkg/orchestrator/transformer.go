package orchestrator

import (
	"context"

	"github.com/goliatone/go-mathsheet/pkg/model"
)

// Transformer mutates a Worksheet after layout and before rendering.
// Implementations can rewrite headers, reorder lines or attach metadata.
type Transformer interface {
	Transform(ctx context.Context, sheet *model.Worksheet) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, sheet *model.Worksheet) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, sheet *model.Worksheet) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, sheet)
}

// Header is the title and instructions used for one worksheet kind.
type Header struct {
	Title        string
	Instructions string
}

// DefaultHeaders returns the built-in headings per worksheet kind.
func DefaultHeaders() map[model.WorksheetKind]Header {
	return map[model.WorksheetKind]Header{
		model.WorksheetArithmetic: {
			Title:        "Addition and subtraction",
			Instructions: "Write the answer after each **=** sign.",
		},
		model.WorksheetMissingNumber: {
			Title:        "Missing numbers",
			Instructions: "Fill in each blank with the missing number.",
		},
	}
}

// HeaderTransformer fills an empty Title or Instructions from headers, keyed
// by worksheet kind. Values already set on the worksheet win.
func HeaderTransformer(headers map[model.WorksheetKind]Header) Transformer {
	return TransformerFunc(func(_ context.Context, sheet *model.Worksheet) error {
		header, ok := headers[sheet.Kind]
		if !ok {
			return nil
		}
		if sheet.Title == "" {
			sheet.Title = header.Title
		}
		if sheet.Instructions == "" {
			sheet.Instructions = header.Instructions
		}
		return nil
	})
}
