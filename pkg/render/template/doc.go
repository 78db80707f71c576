// Package template defines the renderer-agnostic template seam used by the
// HTML worksheet renderer. The gotemplate sub-package provides the default
// pongo2-backed implementation.
package template
