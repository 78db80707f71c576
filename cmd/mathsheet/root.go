package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-mathsheet/internal/config"
	"github.com/goliatone/go-mathsheet/pkg/logger"
	"github.com/goliatone/go-mathsheet/pkg/orchestrator"
	"github.com/goliatone/go-mathsheet/pkg/preset"
	"github.com/goliatone/go-mathsheet/pkg/prompt"
	"github.com/goliatone/go-mathsheet/pkg/render"
)

// app carries the streams and collaborators shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	configFile    string
	configOptions config.Options
	driver        prompt.Driver
	now           func() time.Time

	v        *viper.Viper
	settings config.Settings
	log      logger.Logger
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		now:    time.Now,
	}
}

func (a *app) execute(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// logger returns the configured logger, or a console logger on errOut when
// configuration never got that far.
func (a *app) logger() logger.Logger {
	if a.log != nil {
		return a.log
	}
	log, err := logger.New(logger.Config{Output: a.errOut})
	if err != nil {
		return logger.NewNop()
	}
	return log
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mathsheet",
		Short:         "Generate printable arithmetic worksheets",
		Long:          "Generate addition/subtraction and missing-number worksheets as xlsx, html, markdown or text.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./mathsheet.yaml or ./config/mathsheet.yaml)")
	flags.String("format", "xlsx", "output format: xlsx, html, markdown, text or table")
	flags.String("output", "", "output file (default is <output-dir>/<kind>-<timestamp>.<ext>)")
	flags.String("output-dir", "./output", "directory for generated worksheets, created when missing")
	flags.Int("font-size", render.DefaultFontSize, "font size in points")
	flags.String("font-family", render.DefaultFontFamily, "monospaced font family")
	flags.String("template", "", "xlsx workbook to append the worksheet to")
	flags.String("title", "", "worksheet title")
	flags.String("instructions", "", "worksheet instructions (markdown)")
	flags.Bool("headers", false, "add a default title and instructions when none are given")
	flags.Int64("seed", 0, "random seed for reproducible worksheets (0 picks one)")
	flags.String("presets-dir", "", "directory of extra preset files")
	flags.Bool("preview", false, "print a table preview to stdout instead of writing a file")
	flags.Bool("interactive", false, "prompt for every setting")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")

	root.AddCommand(a.addMinusCommand(), a.missingNumberCommand())
	return root
}

// setup loads configuration for cmd, binding shared flags at the top level and
// the command's own flags under section.
func (a *app) setup(cmd *cobra.Command, section string) error {
	opts := a.configOptions
	opts.ConfigFile = a.configFile

	v, err := config.Load(opts)
	if err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.InheritedFlags(), ""); err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.LocalFlags(), section); err != nil {
		return err
	}
	// log.level and log.format are nested keys
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return fmt.Errorf("config: bind log level: %w", err)
	}
	if err := v.BindPFlag("log.format", cmd.Flags().Lookup("log-format")); err != nil {
		return fmt.Errorf("config: bind log format: %w", err)
	}

	settings, err := config.Decode(v)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: a.errOut,
	})
	if err != nil {
		return err
	}

	a.v = v
	a.settings = settings
	a.log = log.With(logger.String("command", cmd.Name()))
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("config loaded", logger.String("file", used))
	}
	return nil
}

func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	store, err := preset.Defaults()
	if err != nil {
		return nil, err
	}
	if dir := a.settings.PresetsDir; dir != "" {
		custom, err := preset.LoadFS(os.DirFS(dir))
		if err != nil {
			return nil, err
		}
		store = store.Merge(custom)
		a.log.Debug("presets loaded", logger.String("dir", dir), logger.Strings("names", custom.Names()))
	}

	opts := []orchestrator.Option{
		orchestrator.WithLogger(a.log),
		orchestrator.WithPresets(store),
		orchestrator.WithDefaultRenderer(a.settings.Format),
	}
	if a.settings.Seed != 0 {
		opts = append(opts, orchestrator.WithSeed(a.settings.Seed))
	}
	if a.settings.Headers {
		opts = append(opts, orchestrator.WithTransformers(orchestrator.HeaderTransformer(orchestrator.DefaultHeaders())))
	}
	return orchestrator.New(opts...), nil
}

func (a *app) promptDriver() prompt.Driver {
	if a.driver != nil {
		return a.driver
	}
	return prompt.NewSurveyDriver()
}

// emit renders req and either previews it on stdout or writes it to disk.
func (a *app) emit(ctx context.Context, gen *orchestrator.Orchestrator, req orchestrator.Request, kind string) error {
	req.Title = a.settings.Title
	req.Instructions = a.settings.Instructions
	req.RenderOptions = a.settings.RenderOptions()

	if a.settings.Preview {
		req.Renderer = "table"
		output, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}
		if _, err := a.out.Write(output); err != nil {
			return render.IOError("write preview", err)
		}
		return nil
	}

	req.Renderer = a.settings.Format
	renderer, err := gen.Renderer(req.Renderer)
	if err != nil {
		return err
	}
	output, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}

	path := a.settings.Output
	if path == "" {
		name := fmt.Sprintf("%s-%s%s", kind, a.now().Format("20060102-150405"), renderer.Extension())
		path = filepath.Join(a.settings.OutputDir, name)
	}
	if err := writeOutput(path, output); err != nil {
		return err
	}

	a.log.Info("worksheet written",
		logger.String("path", path),
		logger.String("format", renderer.Name()),
		logger.Int("bytes", len(output)),
	)
	fmt.Fprintf(a.out, "Worksheet written to %s\n", path)
	return nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return render.IOError("create output dir", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return render.IOError("write output", err)
	}
	return nil
}
