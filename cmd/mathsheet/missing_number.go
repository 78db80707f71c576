package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-mathsheet/internal/config"
	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/orchestrator"
	"github.com/goliatone/go-mathsheet/pkg/prompt"
)

func (a *app) missingNumberCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missing-number",
		Short: "Generate a fill-in-the-missing-number worksheet",
		Example: `  mathsheet missing-number -r 200 -s 5 --start-multiple
  mathsheet missing-number -s -1 -w 30 -g 3 --format markdown`,
		Args: cobra.NoArgs,
		RunE: a.runMissingNumber,
	}

	flags := cmd.Flags()
	flags.IntP("count", "n", model.DefaultSequenceCount, "number of sequences")
	flags.IntP("per-line", "o", model.DefaultSequencePerLine, "sequences per line")
	flags.IntP("number-min", "l", 0, "smallest number")
	flags.IntP("number-max", "r", model.DefaultSequenceMax, "largest number")
	flags.IntP("step", "s", model.DefaultSequenceStep, "difference between neighbours, negative counts down")
	flags.IntP("line-width", "w", model.DefaultLineWidth, "characters per sequence")
	flags.IntP("gaps-per-line", "g", model.DefaultGapsPerLine, "gaps per sequence")
	flags.IntP("miss-max-per-gap", "m", model.DefaultMaxMissingPerGap, "most numbers missing in one gap")
	flags.Bool("start-multiple", false, "start every sequence on a multiple of the step")
	return cmd
}

func (a *app) runMissingNumber(cmd *cobra.Command, _ []string) error {
	if err := a.setup(cmd, "missing_number"); err != nil {
		return err
	}
	ctx := cmd.Context()

	cfg := config.DecodeSequence(a.v).SequenceConfig()
	if a.settings.Interactive {
		if err := prompt.Sequence(ctx, a.promptDriver(), &cfg); err != nil {
			return err
		}
	}

	gen, err := a.orchestrator()
	if err != nil {
		return err
	}
	return a.emit(ctx, gen, orchestrator.Request{Sequence: &cfg}, "missing-number")
}
