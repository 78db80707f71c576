package orchestrator_test

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-mathsheet/pkg/generator"
	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/orchestrator"
	"github.com/goliatone/go-mathsheet/pkg/pattern"
	"github.com/goliatone/go-mathsheet/pkg/preset"
	"github.com/goliatone/go-mathsheet/pkg/render"
	"github.com/goliatone/go-mathsheet/pkg/testsupport"
)

var expressionRE = regexp.MustCompile(`^\s*(\d+) ([+-])\s*(\d+)=$`)

func parseExpression(t *testing.T, item string) (int, string, int) {
	t.Helper()
	m := expressionRE.FindStringSubmatch(item)
	require.NotNil(t, m, "item %q does not match the expression format", item)
	left, _ := strconv.Atoi(m[1])
	right, _ := strconv.Atoi(m[3])
	return left, m[2], right
}

func fixedID() string { return "sheet-1" }

func newOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	base := []orchestrator.Option{
		orchestrator.WithRand(testsupport.Rand(testsupport.Seed)),
		orchestrator.WithIDFunc(fixedID),
	}
	return orchestrator.New(append(base, options...)...)
}

func arithmeticRequest(mutate func(*model.GenerationConfig)) orchestrator.Request {
	cfg := model.DefaultGenerationConfig()
	cfg.Count = 10
	if mutate != nil {
		mutate(&cfg)
	}
	return orchestrator.Request{Arithmetic: &orchestrator.ArithmeticRequest{Config: cfg}}
}

func TestBuildArithmeticWorksheet(t *testing.T) {
	orch := newOrchestrator()
	sheet, err := orch.Build(testsupport.Context(), arithmeticRequest(nil))
	require.NoError(t, err)

	assert.Equal(t, "sheet-1", sheet.ID)
	assert.Equal(t, model.WorksheetArithmetic, sheet.Kind)
	assert.Equal(t, 1, sheet.Spacing)
	require.Len(t, sheet.Items, 10)
	require.Len(t, sheet.Lines, 5)

	for _, item := range sheet.Items {
		left, op, right := parseExpression(t, item)
		assert.Equal(t, "+", op)
		assert.GreaterOrEqual(t, left+right, 0)
		assert.LessOrEqual(t, left+right, 20)
		assert.LessOrEqual(t, left, 10)
		assert.LessOrEqual(t, right, 10)
	}
	for i, line := range sheet.Lines {
		assert.Equal(t, sheet.Items[2*i]+"    "+sheet.Items[2*i+1], line)
	}
}

func TestBuildIsDeterministicForSeed(t *testing.T) {
	first, err := newOrchestrator().Build(testsupport.Context(), arithmeticRequest(nil))
	require.NoError(t, err)
	second, err := newOrchestrator().Build(testsupport.Context(), arithmeticRequest(nil))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("seeded runs differ (-first +second):\n%s", diff)
	}
}

func TestBuildAppliesPresetAndPattern(t *testing.T) {
	orch := newOrchestrator()

	req := arithmeticRequest(nil)
	req.Preset = "make-ten"
	sheet, err := orch.Build(testsupport.Context(), req)
	require.NoError(t, err)
	for _, item := range sheet.Items {
		left, _, right := parseExpression(t, item)
		assert.Equal(t, 10, left+right, item)
	}

	req = arithmeticRequest(nil)
	req.Preset = "make-ten"
	req.Arithmetic.Pattern = "5,*"
	sheet, err = orch.Build(testsupport.Context(), req)
	require.NoError(t, err)
	for _, item := range sheet.Items {
		left, _, right := parseExpression(t, item)
		assert.Equal(t, 5, left, item)
		assert.LessOrEqual(t, left+right, 10, item)
	}
}

func TestBuildMixedCategoryUsesBothOperators(t *testing.T) {
	orch := newOrchestrator()
	sheet, err := orch.Build(testsupport.Context(), arithmeticRequest(func(cfg *model.GenerationConfig) {
		cfg.Category = model.CategoryMixed
		cfg.Count = 200
	}))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, item := range sheet.Items {
		left, op, right := parseExpression(t, item)
		seen[op] = true
		if op == "-" {
			assert.GreaterOrEqual(t, left-right, 0, item)
		}
	}
	assert.True(t, seen["+"] && seen["-"], "expected both operators, saw %v", seen)
}

func TestBuildArithmeticErrors(t *testing.T) {
	ctx := testsupport.Context()

	t.Run("pattern syntax", func(t *testing.T) {
		req := arithmeticRequest(nil)
		req.Arithmetic.Pattern = "a,b"
		_, err := newOrchestrator().Build(ctx, req)
		assert.ErrorIs(t, err, pattern.ErrPatternSyntax)
	})

	t.Run("infeasible", func(t *testing.T) {
		req := arithmeticRequest(func(cfg *model.GenerationConfig) {
			cfg.ResultMin = 50
			cfg.ResultMax = 60
		})
		_, err := newOrchestrator(orchestrator.WithMaxAttempts(500)).Build(ctx, req)
		assert.ErrorIs(t, err, generator.ErrInfeasible)
	})

	t.Run("invalid config", func(t *testing.T) {
		req := arithmeticRequest(func(cfg *model.GenerationConfig) {
			cfg.Count = 0
		})
		_, err := newOrchestrator().Build(ctx, req)
		assert.ErrorIs(t, err, model.ErrInvalidConfig)
	})

	t.Run("unknown preset", func(t *testing.T) {
		req := arithmeticRequest(nil)
		req.Preset = "missing"
		_, err := newOrchestrator().Build(ctx, req)
		assert.ErrorIs(t, err, preset.ErrUnknownPreset)
	})

	t.Run("presets disabled", func(t *testing.T) {
		req := arithmeticRequest(nil)
		req.Preset = "make-ten"
		_, err := newOrchestrator(orchestrator.WithPresets(nil)).Build(ctx, req)
		assert.ErrorIs(t, err, preset.ErrUnknownPreset)
	})
}

func TestBuildSequenceWorksheet(t *testing.T) {
	cfg := model.DefaultSequenceConfig()
	cfg.Count = 5
	cfg.Step = 5

	sheet, err := newOrchestrator().Build(testsupport.Context(), orchestrator.Request{Sequence: &cfg})
	require.NoError(t, err)

	assert.Equal(t, model.WorksheetMissingNumber, sheet.Kind)
	assert.Equal(t, 0, sheet.Spacing)
	require.Len(t, sheet.Lines, 5)
	for _, line := range sheet.Lines {
		assert.LessOrEqual(t, len(line), cfg.LineWidth, line)
		assert.Contains(t, line, "_")
	}
}

func TestBuildRejectsAmbiguousRequests(t *testing.T) {
	ctx := testsupport.Context()
	seq := model.DefaultSequenceConfig()

	_, err := newOrchestrator().Build(ctx, orchestrator.Request{})
	assert.ErrorIs(t, err, model.ErrInvalidConfig)

	both := arithmeticRequest(nil)
	both.Sequence = &seq
	_, err = newOrchestrator().Build(ctx, both)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)

	_, err = newOrchestrator().Build(ctx, orchestrator.Request{Sequence: &seq, Preset: "make-ten"})
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestBuildHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newOrchestrator().Build(ctx, arithmeticRequest(nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateRendersWithNamedRenderer(t *testing.T) {
	orch := newOrchestrator()
	req := arithmeticRequest(func(cfg *model.GenerationConfig) {
		cfg.Count = 4
	})
	req.Renderer = "text"
	req.Title = "Practice"

	out, err := orch.Generate(testsupport.Context(), req)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Practice", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "", lines[3])
}

func TestGenerateDefaultsToXLSX(t *testing.T) {
	orch := newOrchestrator()
	renderer, err := orch.Renderer("")
	require.NoError(t, err)
	assert.Equal(t, "xlsx", renderer.Name())
	assert.Equal(t, []string{"html", "markdown", "table", "text", "xlsx"}, orch.Renderers())

	out, err := orch.Generate(testsupport.Context(), arithmeticRequest(nil))
	require.NoError(t, err)
	assert.True(t, len(out) > 4 && string(out[:2]) == "PK", "expected a zip container")
}

func TestGenerateUnknownRenderer(t *testing.T) {
	req := arithmeticRequest(nil)
	req.Renderer = "pdf"
	_, err := newOrchestrator().Generate(testsupport.Context(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `renderer "pdf"`)
}

func TestGenerateWrapsRenderIOErrors(t *testing.T) {
	req := arithmeticRequest(nil)
	req.RenderOptions = render.RenderOptions{TemplatePath: t.TempDir() + "/missing.xlsx"}
	_, err := newOrchestrator().Generate(testsupport.Context(), req)
	assert.ErrorIs(t, err, render.ErrIO)
}

func TestTransformers(t *testing.T) {
	orch := newOrchestrator(orchestrator.WithTransformers(
		orchestrator.HeaderTransformer(orchestrator.DefaultHeaders()),
	))

	req := arithmeticRequest(nil)
	req.Title = "Custom"
	sheet, err := orch.Build(testsupport.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, "Custom", sheet.Title)
	assert.Equal(t, orchestrator.DefaultHeaders()[model.WorksheetArithmetic].Instructions, sheet.Instructions)

	boom := errors.New("boom")
	failing := newOrchestrator(orchestrator.WithTransformers(
		orchestrator.TransformerFunc(func(context.Context, *model.Worksheet) error { return boom }),
	))
	_, err = failing.Build(testsupport.Context(), req)
	assert.ErrorIs(t, err, boom)
}
