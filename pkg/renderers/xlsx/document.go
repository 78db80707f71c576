package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-mathsheet/pkg/render"
)

const defaultSheet = "Worksheet"

// document appends one paragraph per row to the active sheet of a workbook.
type document struct {
	file   *excelize.File
	sheet  string
	row    int
	family string
	styles map[int]int
}

// loadTemplate opens the workbook at path, or starts a blank one when path is
// empty. Paragraphs are appended below any rows the template already holds.
func loadTemplate(path, family string) (*document, error) {
	doc := &document{family: family, styles: make(map[int]int)}

	if path == "" {
		doc.file = excelize.NewFile()
		if err := doc.file.SetSheetName("Sheet1", defaultSheet); err != nil {
			_ = doc.file.Close()
			return nil, render.IOError("rename sheet", err)
		}
		doc.sheet = defaultSheet
		return doc, nil
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, render.IOError("open template "+path, err)
	}
	doc.file = file
	doc.sheet = file.GetSheetName(file.GetActiveSheetIndex())

	rows, err := file.GetRows(doc.sheet)
	if err != nil {
		_ = file.Close()
		return nil, render.IOError("read template rows", err)
	}
	doc.row = len(rows)
	return doc, nil
}

// appendParagraph writes text into column A of the next row using the
// monospaced style for fontSize.
func (d *document) appendParagraph(fontSize int, text string, bold bool) error {
	d.row++
	cell, err := excelize.CoordinatesToCellName(1, d.row)
	if err != nil {
		return err
	}
	if err := d.file.SetCellStr(d.sheet, cell, text); err != nil {
		return err
	}

	style, err := d.style(fontSize, bold)
	if err != nil {
		return err
	}
	return d.file.SetCellStyle(d.sheet, cell, cell, style)
}

// skip leaves n empty rows.
func (d *document) skip(n int) {
	if n > 0 {
		d.row += n
	}
}

func (d *document) style(fontSize int, bold bool) (int, error) {
	key := fontSize
	if bold {
		key = -fontSize
	}
	if id, ok := d.styles[key]; ok {
		return id, nil
	}
	id, err := d.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: d.family, Size: float64(fontSize), Bold: bold},
	})
	if err != nil {
		return 0, err
	}
	d.styles[key] = id
	return id, nil
}

func (d *document) properties(title, identifier string) error {
	return d.file.SetDocProps(&excelize.DocProperties{
		Title:      title,
		Identifier: identifier,
		Creator:    "mathsheet",
	})
}

// save serialises the workbook and releases it.
func (d *document) save() ([]byte, error) {
	defer d.file.Close()

	buf, err := d.file.WriteToBuffer()
	if err != nil {
		return nil, render.IOError("write workbook", err)
	}
	return buf.Bytes(), nil
}

func (d *document) close() {
	_ = d.file.Close()
}
