package render

import (
	"context"

	"github.com/goliatone/go-mathsheet/pkg/model"
)

// Renderer finalizes a Worksheet into a byte representation (plain text,
// Markdown, HTML, XLSX, ...).
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is the file extension, including the dot, used when the
	// output is written to disk.
	Extension() string
	Render(ctx context.Context, sheet model.Worksheet, options RenderOptions) ([]byte, error)
}
