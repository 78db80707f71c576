package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-mathsheet/pkg/generator"
	"github.com/goliatone/go-mathsheet/pkg/layout"
	"github.com/goliatone/go-mathsheet/pkg/logger"
	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/pattern"
	"github.com/goliatone/go-mathsheet/pkg/preset"
	"github.com/goliatone/go-mathsheet/pkg/render"
	"github.com/goliatone/go-mathsheet/pkg/renderers/html"
	"github.com/goliatone/go-mathsheet/pkg/renderers/markdown"
	"github.com/goliatone/go-mathsheet/pkg/renderers/table"
	"github.com/goliatone/go-mathsheet/pkg/renderers/text"
	"github.com/goliatone/go-mathsheet/pkg/renderers/xlsx"
)

const defaultRendererName = "xlsx"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithRand injects the random source shared by every generation run.
func WithRand(r *rand.Rand) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed creates a deterministic random source from seed.
func WithSeed(seed int64) Option {
	return func(o *Orchestrator) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts overrides the rejection sampling cap of the arithmetic
// generator.
func WithMaxAttempts(n int) Option {
	return func(o *Orchestrator) {
		o.maxAttempts = n
	}
}

// WithLogger injects a structured logger.
func WithLogger(log logger.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithPresets supplies the preset catalogue. Pass nil to disable the embedded
// defaults.
func WithPresets(store *preset.Store) Option {
	return func(o *Orchestrator) {
		o.presets = store
		o.presetsSpecified = true
	}
}

// WithIDFunc overrides how worksheet identifiers are minted.
func WithIDFunc(fn func() string) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.idFunc = fn
		}
	}
}

// WithTransformers registers transformers that run against the laid out
// worksheet before rendering.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// Orchestrator coordinates the full pipeline from configuration to rendered
// worksheet. It applies sensible defaults (every built-in renderer, embedded
// presets, a time seeded random source) while remaining open to dependency
// injection.
type Orchestrator struct {
	// mu serialises draws from rng, which is not safe for concurrent use.
	mu sync.Mutex

	registry         *render.Registry
	defaultRenderer  string
	rng              *rand.Rand
	maxAttempts      int
	logger           logger.Logger
	presets          *preset.Store
	presetsSpecified bool
	idFunc           func() string
	transformers     []Transformer
	initialiseErr    error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// ArithmeticRequest configures an add-minus worksheet. Pattern, when set,
// replaces Config.Operands after any preset is applied.
type ArithmeticRequest struct {
	Config  model.GenerationConfig
	Pattern string
}

// Request describes one worksheet. Exactly one of Arithmetic or Sequence must
// be set.
type Request struct {
	Arithmetic *ArithmeticRequest
	Sequence   *model.SequenceConfig

	// Preset names a catalogue entry overlaid on the arithmetic config.
	Preset string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	Title        string
	Instructions string

	RenderOptions render.RenderOptions
}

// Generate builds the worksheet and renders it with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	sheet, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, sheet, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("worksheet rendered",
		logger.String("id", sheet.ID),
		logger.String("renderer", renderer.Name()),
		logger.Int("bytes", len(output)),
	)
	return output, nil
}

// Build generates and lays out a worksheet without rendering it.
func (o *Orchestrator) Build(ctx context.Context, req Request) (model.Worksheet, error) {
	if ctx == nil {
		return model.Worksheet{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Worksheet{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.Worksheet{}, err
	}

	var (
		sheet model.Worksheet
		err   error
	)
	switch {
	case req.Arithmetic != nil && req.Sequence != nil:
		return model.Worksheet{}, fmt.Errorf("%w: request sets both arithmetic and sequence", model.ErrInvalidConfig)
	case req.Arithmetic != nil:
		sheet, err = o.buildArithmetic(ctx, *req.Arithmetic, req.Preset)
	case req.Sequence != nil:
		if req.Preset != "" {
			return model.Worksheet{}, fmt.Errorf("%w: presets apply to arithmetic worksheets only", model.ErrInvalidConfig)
		}
		sheet, err = o.buildSequence(ctx, *req.Sequence)
	default:
		return model.Worksheet{}, fmt.Errorf("%w: request needs arithmetic or sequence settings", model.ErrInvalidConfig)
	}
	if err != nil {
		return model.Worksheet{}, err
	}

	sheet.ID = o.idFunc()
	sheet.Title = req.Title
	sheet.Instructions = req.Instructions

	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, &sheet); err != nil {
			return model.Worksheet{}, fmt.Errorf("orchestrator: transform worksheet: %w", err)
		}
	}

	o.logger.Info("worksheet built",
		logger.String("id", sheet.ID),
		logger.String("kind", string(sheet.Kind)),
		logger.Int("items", len(sheet.Items)),
		logger.Int("lines", len(sheet.Lines)),
	)
	return sheet, nil
}

// ResolveArithmetic applies the preset and pattern of req to its config and
// validates the result.
func (o *Orchestrator) ResolveArithmetic(req ArithmeticRequest, presetName string) (model.GenerationConfig, error) {
	cfg := req.Config
	if presetName != "" {
		if err := o.presets.Apply(presetName, &cfg); err != nil {
			return model.GenerationConfig{}, fmt.Errorf("orchestrator: %w", err)
		}
	}
	if req.Pattern != "" {
		operands, err := pattern.Parse(req.Pattern)
		if err != nil {
			return model.GenerationConfig{}, fmt.Errorf("orchestrator: %w", err)
		}
		cfg.Operands = operands
	}
	if err := cfg.Validate(); err != nil {
		return model.GenerationConfig{}, fmt.Errorf("orchestrator: %w", err)
	}
	return cfg, nil
}

func (o *Orchestrator) buildArithmetic(ctx context.Context, req ArithmeticRequest, presetName string) (model.Worksheet, error) {
	cfg, err := o.ResolveArithmetic(req, presetName)
	if err != nil {
		return model.Worksheet{}, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	gen := generator.NewArithmetic(generator.WithRand(o.rng), generator.WithMaxAttempts(o.maxAttempts))
	items := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return model.Worksheet{}, err
		}
		expr, err := gen.Generate(cfg)
		if err != nil {
			return model.Worksheet{}, fmt.Errorf("orchestrator: expression %d: %w", i+1, err)
		}
		items = append(items, generator.Render(cfg, expr))
	}

	o.logger.Debug("arithmetic items generated",
		logger.String("category", string(cfg.Category)),
		logger.String("pattern", cfg.Operands.String()),
		logger.Int("count", len(items)),
	)

	return model.Worksheet{
		Kind:    model.WorksheetArithmetic,
		Lines:   layout.New(cfg.PerLine).Lines(items),
		Spacing: 1,
		Items:   items,
	}, nil
}

func (o *Orchestrator) buildSequence(ctx context.Context, cfg model.SequenceConfig) (model.Worksheet, error) {
	if err := cfg.Validate(); err != nil {
		return model.Worksheet{}, fmt.Errorf("orchestrator: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	builder := generator.NewSequence(generator.WithRand(o.rng))
	items := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return model.Worksheet{}, err
		}
		line, err := builder.Build(cfg)
		if err != nil {
			return model.Worksheet{}, fmt.Errorf("orchestrator: sequence %d: %w", i+1, err)
		}
		items = append(items, line.String())
	}

	return model.Worksheet{
		Kind:  model.WorksheetMissingNumber,
		Lines: layout.New(cfg.PerLine).Lines(items),
		Items: items,
	}, nil
}

// Renderer resolves name, falling back to the default renderer and then to
// the first registered one when name is empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// Presets exposes the preset catalogue in use.
func (o *Orchestrator) Presets() *preset.Store {
	return o.presets
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) applyDefaults() {
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.idFunc == nil {
		o.idFunc = uuid.NewString
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
		if !o.registry.Has("html") {
			o.initialiseErr = errors.New("orchestrator: default html renderer unavailable")
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if !o.presetsSpecified {
		store, err := preset.Defaults()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load presets: %w", err)
			return
		}
		o.presets = store
	}
}

// DefaultRegistry returns a registry holding every built-in renderer. The
// html renderer is skipped if its embedded templates fail to load.
func DefaultRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(text.New())
	registry.MustRegister(table.New())
	registry.MustRegister(markdown.New())
	registry.MustRegister(xlsx.New())
	if renderer, err := html.New(); err == nil {
		registry.MustRegister(renderer)
	}
	return registry
}
