package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can copy and
// customise the default worksheet page.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
