package template_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-mathsheet/pkg/render/template/gotemplate"
	"github.com/goliatone/go-mathsheet/pkg/testsupport"
)

func templatesFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tmpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tmpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tmpl": {Data: []byte("{{ name|exclaim }}")},
		"line.tmpl":       {Data: []byte("[{{ line|keepspaces }}]")},
		"struct.tmpl":     {Data: []byte("{{ sheet.title }}:{{ sheet.lines|length }}")},
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := "Hello Ada!"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_WithGlobalData(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS()),
		gotemplate.WithGlobalData(map[string]any{"settings": map[string]any{"env": "print"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.Render("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=print" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("exclaim", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected output %q", result)
	}

	if err := engine.RegisterFilter("exclaim", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestGoTemplateEngine_KeepSpacesFilter(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("line", map[string]any{"line": " 3 + 7="})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "[ 3 + 7=]"
	if result != want {
		t.Fatalf("keepspaces mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RenderStringAndStructs(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ a }}+{{ b }}", map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "1+2" {
		t.Fatalf("unexpected inline output %q", result)
	}

	sheet := testsupport.ArithmeticWorksheet()
	result, err = engine.RenderTemplate("struct", map[string]any{"sheet": sheet})
	if err != nil {
		t.Fatalf("render struct: %v", err)
	}
	if result != "Addition:2" {
		t.Fatalf("unexpected struct output %q", result)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestGoTemplateEngine_BaseDirAndExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sheet.html"), []byte("<h1>{{ title }}</h1>"), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(dir),
		gotemplate.WithExtension("html"),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.Render("sheet", map[string]any{"title": "Sums"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "<h1>Sums</h1>" {
		t.Fatalf("unexpected output %q", result)
	}
}
