package model

// WorksheetKind distinguishes the two generated sheet types.
type WorksheetKind string

const (
	WorksheetArithmetic    WorksheetKind = "add-minus"
	WorksheetMissingNumber WorksheetKind = "missing-number"
)

// Worksheet is the document-free result of a generation run. Renderers
// finalize it once into bytes.
type Worksheet struct {
	ID           string        `json:"id"`
	Kind         WorksheetKind `json:"kind"`
	Title        string        `json:"title,omitempty"`
	Instructions string        `json:"instructions,omitempty"`
	// Lines are the laid out rows, one paragraph each.
	Lines []string `json:"lines"`
	// Spacing is the number of blank lines emitted between rows.
	Spacing int `json:"spacing"`
	// Items keeps the unlaid rendered items in generation order.
	Items []string `json:"items,omitempty"`
}

// AppendLine adds a laid out row.
func (w *Worksheet) AppendLine(line string) {
	w.Lines = append(w.Lines, line)
}

// Empty reports whether the worksheet holds no rows.
func (w Worksheet) Empty() bool {
	return len(w.Lines) == 0
}
