// Package text renders worksheets as plain UTF-8 text, one laid out row per
// paragraph.
package text

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/render"
)

type Option func(*Renderer)

// WithHeader toggles the title and instructions block above the rows.
func WithHeader(enabled bool) Option {
	return func(r *Renderer) {
		r.header = enabled
	}
}

type Renderer struct {
	header bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the plain text renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{header: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "text"
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

	var buf bytes.Buffer
	if r.header {
		writeHeader(&buf, sheet)
	}
	if err := WritePlainText(&buf, sheet); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePlainText writes each line followed by sheet.Spacing blank lines.
func WritePlainText(w io.Writer, sheet model.Worksheet) error {
	spacing := strings.Repeat("\n", max(sheet.Spacing, 0))
	for i, line := range sheet.Lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return render.IOError("write line", err)
		}
		if i == len(sheet.Lines)-1 || spacing == "" {
			continue
		}
		if _, err := io.WriteString(w, spacing); err != nil {
			return render.IOError("write spacing", err)
		}
	}
	return nil
}

func writeHeader(buf *bytes.Buffer, sheet model.Worksheet) {
	title := strings.TrimSpace(sheet.Title)
	instructions := strings.TrimSpace(sheet.Instructions)
	if title == "" && instructions == "" {
		return
	}
	if title != "" {
		fmt.Fprintln(buf, title)
	}
	if instructions != "" {
		fmt.Fprintln(buf, instructions)
	}
	buf.WriteByte('\n')
}
