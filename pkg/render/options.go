package render

// Default document settings.
const (
	DefaultFontSize   = 14
	DefaultFontFamily = "Courier New"
)

// RenderOptions describe per-request document settings that renderers use to
// customise their output without touching the worksheet.
type RenderOptions struct {
	// FontSize is the point size of every paragraph. Zero selects
	// DefaultFontSize.
	FontSize int
	// FontFamily should be monospaced so expressions line up. Empty selects
	// DefaultFontFamily.
	FontFamily string
	// TemplatePath points at a base document the document renderers append
	// to. Renderers that have no template concept ignore it.
	TemplatePath string
}

// Normalize fills unset fields with defaults.
func (o RenderOptions) Normalize() RenderOptions {
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	return o
}
