// Package config loads CLI settings from, in rising priority, built-in
// defaults, a mathsheet.yaml file, .env files, MATHSHEET_* environment
// variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/render"
)

// EnvPrefix namespaces environment overrides, e.g. MATHSHEET_OUTPUT_DIR.
const EnvPrefix = "MATHSHEET"

// Options controls where configuration is read from.
type Options struct {
	// ConfigFile is an explicit config path. A missing explicit file is an
	// error; without one the search paths are tried and absence is fine.
	ConfigFile string
	// SearchPaths are directories searched for mathsheet.{yaml,yml,json}.
	// Defaults to "." and "./config".
	SearchPaths []string
	// EnvFiles are loaded into the process environment before viper reads
	// it. Missing files are skipped. Defaults to .env.local then .env.
	EnvFiles []string
}

// Load builds a viper instance with defaults, file, env and .env sources.
func Load(opts Options) (*viper.Viper, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
		return v, nil
	}

	v.SetConfigName("mathsheet")
	paths := opts.SearchPaths
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config: %w", err)
		}
	}
	return v, nil
}

// BindFlags binds each flag in flags to the viper key produced by prefixing
// its name and swapping dashes for underscores. An empty prefix binds to the
// top level.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, prefix string) error {
	var bindErr error
	flags.VisitAll(func(flag *pflag.Flag) {
		if bindErr != nil || flag.Name == "config" {
			return
		}
		key := strings.ReplaceAll(flag.Name, "-", "_")
		if prefix != "" {
			key = prefix + "." + key
		}
		if err := v.BindPFlag(key, flag); err != nil {
			bindErr = fmt.Errorf("config: bind flag %q: %w", flag.Name, err)
		}
	})
	return bindErr
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", "xlsx")
	v.SetDefault("output_dir", "./output")
	v.SetDefault("font_size", render.DefaultFontSize)
	v.SetDefault("font_family", render.DefaultFontFamily)
	v.SetDefault("headers", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("add_minus.count", model.DefaultArithmeticCount)
	v.SetDefault("add_minus.per_line", model.DefaultArithmeticPerLine)
	v.SetDefault("add_minus.category", "+")
	v.SetDefault("add_minus.number_min", 0)
	v.SetDefault("add_minus.number_max", model.DefaultArithmeticMax)
	v.SetDefault("add_minus.pattern", "*,*")

	v.SetDefault("missing_number.count", model.DefaultSequenceCount)
	v.SetDefault("missing_number.per_line", model.DefaultSequencePerLine)
	v.SetDefault("missing_number.number_min", 0)
	v.SetDefault("missing_number.number_max", model.DefaultSequenceMax)
	v.SetDefault("missing_number.step", model.DefaultSequenceStep)
	v.SetDefault("missing_number.line_width", model.DefaultLineWidth)
	v.SetDefault("missing_number.gaps_per_line", model.DefaultGapsPerLine)
	v.SetDefault("missing_number.miss_max_per_gap", model.DefaultMaxMissingPerGap)
}
