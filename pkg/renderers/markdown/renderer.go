// Package markdown renders worksheets as a Markdown document with the rows in
// a fenced block so column alignment survives.
package markdown

import (
	"bytes"
	"context"
	"strings"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/render"
	"github.com/goliatone/go-mathsheet/pkg/renderers/text"
)

const fence = "```"

type Renderer struct{}

var _ render.Renderer = Renderer{}

func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return "markdown"
}

func (Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (Renderer) Extension() string {
	return ".md"
}

func (Renderer) Render(ctx context.Context, sheet model.Worksheet, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if title := strings.TrimSpace(sheet.Title); title != "" {
		buf.WriteString("# " + title + "\n\n")
	}
	if instructions := strings.TrimSpace(sheet.Instructions); instructions != "" {
		buf.WriteString(instructions + "\n\n")
	}

	buf.WriteString(fence + "text\n")
	if err := text.WritePlainText(&buf, sheet); err != nil {
		return nil, err
	}
	buf.WriteString(fence + "\n")
	return buf.Bytes(), nil
}
