package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/render"
)

// Settings are the shared output and logging settings.
type Settings struct {
	Format       string      `mapstructure:"format"`
	Output       string      `mapstructure:"output"`
	OutputDir    string      `mapstructure:"output_dir"`
	FontSize     int         `mapstructure:"font_size"`
	FontFamily   string      `mapstructure:"font_family"`
	Template     string      `mapstructure:"template"`
	Title        string      `mapstructure:"title"`
	Instructions string      `mapstructure:"instructions"`
	Headers      bool        `mapstructure:"headers"`
	Seed         int64       `mapstructure:"seed"`
	PresetsDir   string      `mapstructure:"presets_dir"`
	Preview      bool        `mapstructure:"preview"`
	Interactive  bool        `mapstructure:"interactive"`
	Log          LogSettings `mapstructure:"log"`
}

// LogSettings configure pkg/logger.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RenderOptions maps the document settings onto render options.
func (s Settings) RenderOptions() render.RenderOptions {
	return render.RenderOptions{
		FontSize:     s.FontSize,
		FontFamily:   s.FontFamily,
		TemplatePath: s.Template,
	}
}

// ArithmeticSettings mirror the add-minus flags.
type ArithmeticSettings struct {
	Count         int    `mapstructure:"count"`
	PerLine       int    `mapstructure:"per_line"`
	Category      string `mapstructure:"category"`
	NumberMin     int    `mapstructure:"number_min"`
	NumberMax     int    `mapstructure:"number_max"`
	ResultMin     *int   `mapstructure:"result_min"`
	ResultMax     *int   `mapstructure:"result_max"`
	AllowNegative bool   `mapstructure:"allow_negative"`
	Pattern       string `mapstructure:"pattern"`
	Preset        string `mapstructure:"preset"`
	RoundUnit     int    `mapstructure:"round_unit"`
}

// GenerationConfig converts the settings. Unset result bounds default to
// [0, 2*NumberMax], or [-NumberMax, 2*NumberMax] when negatives are allowed.
func (s ArithmeticSettings) GenerationConfig() (model.GenerationConfig, error) {
	category, err := model.ParseCategory(s.Category)
	if err != nil {
		return model.GenerationConfig{}, err
	}

	cfg := model.GenerationConfig{
		Category:  category,
		NumberMin: s.NumberMin,
		NumberMax: s.NumberMax,
		ResultMin: 0,
		ResultMax: 2 * s.NumberMax,
		Operands:  model.TwoOperand(model.Wildcard(), model.Wildcard()),
		Count:     s.Count,
		PerLine:   s.PerLine,
		RoundUnit: s.RoundUnit,
	}
	if s.AllowNegative {
		cfg.ResultMin = -s.NumberMax
	}
	if s.ResultMin != nil {
		cfg.ResultMin = *s.ResultMin
	}
	if s.ResultMax != nil {
		cfg.ResultMax = *s.ResultMax
	}
	return cfg, nil
}

// SequenceSettings mirror the missing-number flags.
type SequenceSettings struct {
	Count         int  `mapstructure:"count"`
	PerLine       int  `mapstructure:"per_line"`
	NumberMin     int  `mapstructure:"number_min"`
	NumberMax     int  `mapstructure:"number_max"`
	Step          int  `mapstructure:"step"`
	LineWidth     int  `mapstructure:"line_width"`
	GapsPerLine   int  `mapstructure:"gaps_per_line"`
	MissMaxPerGap int  `mapstructure:"miss_max_per_gap"`
	StartMultiple bool `mapstructure:"start_multiple"`
}

// SequenceConfig converts the settings.
func (s SequenceSettings) SequenceConfig() model.SequenceConfig {
	return model.SequenceConfig{
		NumberMin:        s.NumberMin,
		NumberMax:        s.NumberMax,
		Step:             s.Step,
		LineWidth:        s.LineWidth,
		GapsPerLine:      s.GapsPerLine,
		MaxMissingPerGap: s.MissMaxPerGap,
		StartMultipleOf:  s.StartMultiple,
		Count:            s.Count,
		PerLine:          s.PerLine,
	}
}

// Decode reads the shared settings.
func Decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	return s, nil
}

// DecodeArithmetic reads the add_minus section. Result bounds stay nil unless
// a flag, env var or file sets them explicitly.
func DecodeArithmetic(v *viper.Viper) ArithmeticSettings {
	const prefix = "add_minus."
	s := ArithmeticSettings{
		Count:         v.GetInt(prefix + "count"),
		PerLine:       v.GetInt(prefix + "per_line"),
		Category:      v.GetString(prefix + "category"),
		NumberMin:     v.GetInt(prefix + "number_min"),
		NumberMax:     v.GetInt(prefix + "number_max"),
		AllowNegative: v.GetBool(prefix + "allow_negative"),
		Pattern:       v.GetString(prefix + "pattern"),
		Preset:        v.GetString(prefix + "preset"),
		RoundUnit:     v.GetInt(prefix + "round_unit"),
	}
	if v.IsSet(prefix + "result_min") {
		value := v.GetInt(prefix + "result_min")
		s.ResultMin = &value
	}
	if v.IsSet(prefix + "result_max") {
		value := v.GetInt(prefix + "result_max")
		s.ResultMax = &value
	}
	return s
}

// DecodeSequence reads the missing_number section.
func DecodeSequence(v *viper.Viper) SequenceSettings {
	const prefix = "missing_number."
	return SequenceSettings{
		Count:         v.GetInt(prefix + "count"),
		PerLine:       v.GetInt(prefix + "per_line"),
		NumberMin:     v.GetInt(prefix + "number_min"),
		NumberMax:     v.GetInt(prefix + "number_max"),
		Step:          v.GetInt(prefix + "step"),
		LineWidth:     v.GetInt(prefix + "line_width"),
		GapsPerLine:   v.GetInt(prefix + "gaps_per_line"),
		MissMaxPerGap: v.GetInt(prefix + "miss_max_per_gap"),
		StartMultiple: v.GetBool(prefix + "start_multiple"),
	}
}
