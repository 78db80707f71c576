// Package xlsx renders worksheets into a spreadsheet document, one row per
// laid out line, using excelize.
package xlsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/render"
)

// columnWidth keeps long rows readable when the sheet is opened.
const columnWidth = 80

type Renderer struct{}

var _ render.Renderer = Renderer{}

func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return "xlsx"
}

func (Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (Renderer) Extension() string {
	return ".xlsx"
}

func (Renderer) Render(ctx context.Context, sheet model.Worksheet, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options = options.Normalize()

	doc, err := loadTemplate(options.TemplatePath, options.FontFamily)
	if err != nil {
		return nil, err
	}

	if err := write(ctx, doc, sheet, options); err != nil {
		doc.close()
		return nil, err
	}
	return doc.save()
}

func write(ctx context.Context, doc *document, sheet model.Worksheet, options render.RenderOptions) error {
	if err := doc.file.SetColWidth(doc.sheet, "A", "A", columnWidth); err != nil {
		return render.IOError("set column width", err)
	}

	header := false
	if title := strings.TrimSpace(sheet.Title); title != "" {
		if err := doc.appendParagraph(options.FontSize, title, true); err != nil {
			return render.IOError("write title", err)
		}
		header = true
	}
	if instructions := strings.TrimSpace(sheet.Instructions); instructions != "" {
		if err := doc.appendParagraph(options.FontSize, instructions, false); err != nil {
			return render.IOError("write instructions", err)
		}
		header = true
	}
	if header {
		doc.skip(1)
	}

	for i, line := range sheet.Lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			doc.skip(sheet.Spacing)
		}
		if err := doc.appendParagraph(options.FontSize, line, false); err != nil {
			return render.IOError(fmt.Sprintf("write line %d", i+1), err)
		}
	}

	if err := doc.properties(sheet.Title, sheet.ID); err != nil {
		return render.IOError("set document properties", err)
	}
	return nil
}
