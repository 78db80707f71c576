package prompt

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/pattern"
)

var categoryOptions = []model.Category{
	model.CategoryAdd,
	model.CategorySubtract,
	model.CategoryMixed,
	model.CategoryRoundAdd,
	model.CategoryRoundSubtract,
	model.CategoryRoundMixed,
}

// Arithmetic asks for every add-minus setting, offering the current values as
// defaults. cfg and operandPattern are updated in place.
func Arithmetic(ctx context.Context, d Driver, cfg *model.GenerationConfig, operandPattern *string) error {
	labels := make([]string, len(categoryOptions))
	current := 0
	for i, category := range categoryOptions {
		labels[i] = string(category)
		if category == cfg.Category {
			current = i
		}
	}
	idx, err := d.Select(ctx, SelectConfig{
		Message:      "Category",
		Options:      labels,
		DefaultIndex: current,
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(categoryOptions) {
		cfg.Category = categoryOptions[idx]
	}

	rawPattern, err := d.Input(ctx, InputConfig{
		Message: "Operand pattern",
		Default: *operandPattern,
		Help:    `"*,*" any pair, "10*,*" a multiple of ten first, "3~5,*" a range, "=10" a fixed result`,
		Validator: func(s string) error {
			_, err := pattern.Parse(s)
			return err
		},
	})
	if err != nil {
		return err
	}
	*operandPattern = strings.TrimSpace(rawPattern)

	steps := []struct {
		message string
		target  *int
		floor   int
	}{
		{"Number of expressions", &cfg.Count, 1},
		{"Expressions per line", &cfg.PerLine, 1},
		{"Smallest operand", &cfg.NumberMin, 0},
		{"Largest operand", &cfg.NumberMax, 0},
		{"Smallest result", &cfg.ResultMin, math.MinInt},
		{"Largest result", &cfg.ResultMax, math.MinInt},
	}
	for _, step := range steps {
		if err := askInt(ctx, d, step.message, step.target, step.floor); err != nil {
			return err
		}
	}

	if cfg.Category.Round() || cfg.RoundUnit > 0 {
		if err := askInt(ctx, d, "Round to multiples of", &cfg.RoundUnit, 0); err != nil {
			return err
		}
	}
	return nil
}

// Sequence asks for every missing-number setting, offering the current values
// as defaults.
func Sequence(ctx context.Context, d Driver, cfg *model.SequenceConfig) error {
	steps := []struct {
		message string
		target  *int
		floor   int
	}{
		{"Number of lines", &cfg.Count, 1},
		{"Sequences per line", &cfg.PerLine, 1},
		{"Smallest number", &cfg.NumberMin, 0},
		{"Largest number", &cfg.NumberMax, 0},
		{"Step (negative counts down)", &cfg.Step, math.MinInt},
		{"Line width in characters", &cfg.LineWidth, 1},
		{"Gaps per line", &cfg.GapsPerLine, 1},
		{"Most numbers missing per gap", &cfg.MaxMissingPerGap, 1},
	}
	for _, step := range steps {
		if err := askInt(ctx, d, step.message, step.target, step.floor); err != nil {
			return err
		}
	}

	startMultiple, err := d.Confirm(ctx, ConfirmConfig{
		Message: "Start every line on a multiple of the step?",
		Default: cfg.StartMultipleOf,
	})
	if err != nil {
		return err
	}
	cfg.StartMultipleOf = startMultiple
	return nil
}

func askInt(ctx context.Context, d Driver, message string, target *int, floor int) error {
	validate := func(s string) error {
		_, err := parseInt(s, floor)
		return err
	}
	raw, err := d.Input(ctx, InputConfig{
		Message:   message,
		Default:   strconv.Itoa(*target),
		Validator: validate,
	})
	if err != nil {
		return err
	}
	value, err := parseInt(raw, floor)
	if err != nil {
		return fmt.Errorf("prompt: %s: %w", strings.ToLower(message), err)
	}
	*target = value
	return nil
}

func parseInt(raw string, floor int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	if value < floor {
		return 0, fmt.Errorf("%d is below the minimum %d", value, floor)
	}
	return value, nil
}
