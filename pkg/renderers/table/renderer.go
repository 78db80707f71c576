// Package table renders a console preview of a worksheet using go-pretty.
package table

import (
	"context"
	"fmt"
	"strings"

	prettytable "github.com/jedib0t/go-pretty/v6/table"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/render"
)

type Option func(*Renderer)

// WithStyle overrides the table style. Defaults to prettytable.StyleLight.
func WithStyle(style prettytable.Style) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// WithFooter toggles the row count footer.
func WithFooter(enabled bool) Option {
	return func(r *Renderer) {
		r.footer = enabled
	}
}

type Renderer struct {
	style  prettytable.Style
	footer bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the preview renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{style: prettytable.StyleLight, footer: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "table"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Extension() string {
	return ".txt"
}

func (r *Renderer) Render(ctx context.Context, sheet model.Worksheet, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := prettytable.NewWriter()
	t.SetStyle(r.style)
	if title := strings.TrimSpace(sheet.Title); title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(prettytable.Row{"#", "Line"})
	for i, line := range sheet.Lines {
		t.AppendRow(prettytable.Row{i + 1, line})
	}
	if r.footer {
		t.AppendFooter(prettytable.Row{"Total", fmt.Sprintf("%d items", len(sheet.Items))})
	}

	return []byte(t.Render() + "\n"), nil
}
