package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-mathsheet/internal/config"
	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/orchestrator"
	"github.com/goliatone/go-mathsheet/pkg/pattern"
	"github.com/goliatone/go-mathsheet/pkg/prompt"
)

func (a *app) addMinusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-minus",
		Short: "Generate an addition and subtraction worksheet",
		Example: `  mathsheet add-minus -n 20 -c "+-" -r 20
  mathsheet add-minus -p "10*,*" -r 100 --format html
  mathsheet add-minus --preset make-ten --preview`,
		Args: cobra.NoArgs,
		RunE: a.runAddMinus,
	}

	flags := cmd.Flags()
	flags.IntP("count", "n", model.DefaultArithmeticCount, "number of expressions")
	flags.IntP("per-line", "o", model.DefaultArithmeticPerLine, "expressions per line")
	flags.StringP("category", "c", "+", `operation: "+", "-", "+-", "round+", "round-" or "round"`)
	flags.IntP("number-min", "l", 0, "smallest operand")
	flags.IntP("number-max", "r", model.DefaultArithmeticMax, "largest operand")
	flags.Int("result-min", 0, "smallest result (default 0, or -number-max with --allow-negative)")
	flags.Int("result-max", 0, "largest result (default 2*number-max)")
	flags.BoolP("allow-negative", "a", false, "allow negative results")
	flags.StringP("pattern", "p", pattern.Default, `operand pattern, e.g. "*,*", "10*,*", "3~5,*" or "=10"`)
	flags.String("preset", "", "named preset from the catalogue")
	flags.Int("round-unit", 0, "round operands to multiples of this unit")
	return cmd
}

func (a *app) runAddMinus(cmd *cobra.Command, _ []string) error {
	if err := a.setup(cmd, "add_minus"); err != nil {
		return err
	}
	ctx := cmd.Context()

	settings := config.DecodeArithmetic(a.v)
	cfg, err := settings.GenerationConfig()
	if err != nil {
		return err
	}

	// a preset brings its own pattern unless one was asked for explicitly
	operandPattern := settings.Pattern
	if settings.Preset != "" && !cmd.Flags().Changed("pattern") {
		operandPattern = ""
	}

	if a.settings.Interactive {
		if operandPattern == "" {
			operandPattern = pattern.Default
		}
		if err := prompt.Arithmetic(ctx, a.promptDriver(), &cfg, &operandPattern); err != nil {
			return err
		}
	}

	gen, err := a.orchestrator()
	if err != nil {
		return err
	}
	req := orchestrator.Request{
		Arithmetic: &orchestrator.ArithmeticRequest{Config: cfg, Pattern: operandPattern},
		Preset:     settings.Preset,
	}
	return a.emit(ctx, gen, req, "add-minus")
}
