// Package html renders worksheets as a printable HTML page through the pongo2
// template adapter.
package html

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/render"
	rendertemplate "github.com/goliatone/go-mathsheet/pkg/render/template"
	gotemplate "github.com/goliatone/go-mathsheet/pkg/render/template/gotemplate"
)

const templateName = "templates/worksheet.tmpl"

var (
	instructionsPolicyOnce sync.Once
	instructionsPolicy     *bluemonday.Policy
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/worksheet.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Extension() string {
	return ".html"
}

func (r *Renderer) Render(ctx context.Context, sheet model.Worksheet, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	options = options.Normalize()
	instructions, err := Instructions(sheet.Instructions)
	if err != nil {
		return nil, fmt.Errorf("html renderer: convert instructions: %w", err)
	}

	documentID := sheet.ID
	if documentID == "" {
		documentID = uuid.NewString()
	}

	result, err := r.templates.RenderTemplate(templateName, map[string]any{
		"sheet":        sheet,
		"instructions": instructions,
		"documentId":   documentID,
		"font": map[string]any{
			"family": options.FontFamily,
			"size":   options.FontSize,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// Instructions converts Markdown instructions to sanitized HTML.
func Instructions(markdown string) (string, error) {
	trimmed := strings.TrimSpace(markdown)
	if trimmed == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(trimmed), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(sanitizer().Sanitize(buf.String())), nil
}

func sanitizer() *bluemonday.Policy {
	instructionsPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("p", "br", "strong", "em", "b", "i", "code", "ul", "ol", "li")
		instructionsPolicy = policy
	})
	return instructionsPolicy
}
