package generator

import (
	"math/rand"
	"sort"

	"github.com/goliatone/go-mathsheet/internal/numeric"
	"github.com/goliatone/go-mathsheet/pkg/model"
)

// Sequence builds missing-number lines.
type Sequence struct {
	rng *rand.Rand
}

// NewSequence constructs a sequence builder. WithMaxAttempts has no effect:
// the builder does not sample by rejection.
func NewSequence(options ...Option) *Sequence {
	cfg := newConfig(options...)
	return &Sequence{rng: cfg.rng}
}

// Build picks a run that fits cfg.LineWidth and hides cfg.GapsPerLine gaps in
// it, keeping at least one visible number between consecutive gaps.
func (s *Sequence) Build(cfg model.SequenceConfig) (model.SequenceLine, error) {
	if err := cfg.ValidateSampling(); err != nil {
		return model.SequenceLine{}, err
	}

	sizes := s.GapSizes(cfg)
	minCount := MinCount(sizes)

	start, err := s.Start(cfg, minCount)
	if err != nil {
		return model.SequenceLine{}, err
	}

	run := Run(start, cfg.Step, cfg.LineWidth)
	if len(run) < minCount {
		return model.SequenceLine{}, infeasiblef("run from %d with step %d holds %d numbers in width %d, need %d",
			start, cfg.Step, len(run), cfg.LineWidth, minCount)
	}

	return model.SequenceLine{Numbers: run, Gaps: s.place(sizes, len(run), minCount)}, nil
}

// GapSizes draws one size in [1, MaxMissingPerGap] per gap.
func (s *Sequence) GapSizes(cfg model.SequenceConfig) []int {
	sizes := make([]int, cfg.GapsPerLine)
	for i := range sizes {
		sizes[i] = between(s.rng, 1, cfg.MaxMissingPerGap)
	}
	return sizes
}

// MinCount is the fewest run entries that host every gap with one visible
// number between consecutive gaps.
func MinCount(sizes []int) int {
	if len(sizes) == 0 {
		return 0
	}
	total := 0
	for _, size := range sizes {
		total += size
	}
	return total + len(sizes) - 1
}

// Start picks the first number of the run uniformly among feasible starts.
// Positive steps search downward from NumberMax for the largest start whose
// run still holds minCount numbers. Negative steps begin at NumberMin plus the
// room minCount numbers need and search upward, past NumberMax when the range
// is too narrow. With StartMultipleOf the pick is rounded to the nearest
// multiple of |Step| inside the feasible range.
func (s *Sequence) Start(cfg model.SequenceConfig, minCount int) (int, error) {
	lo, hi, err := startBounds(cfg, minCount)
	if err != nil {
		return 0, err
	}

	start := between(s.rng, lo, hi)
	if !cfg.StartMultipleOf {
		return start, nil
	}

	rounded, ok := numeric.RoundTo(start, numeric.Abs(cfg.Step), lo, hi)
	if !ok {
		return 0, infeasiblef("no multiple of %d between %d and %d", numeric.Abs(cfg.Step), lo, hi)
	}
	return rounded, nil
}

// startBounds returns the inclusive range of feasible starts. Run length is
// monotone in the start value, so the boundary is found by binary search.
func startBounds(cfg model.SequenceConfig, minCount int) (int, int, error) {
	span := 0
	if minCount > 1 {
		span = (minCount - 1) * numeric.Abs(cfg.Step)
	}
	fits := func(start int) bool {
		return len(Run(start, cfg.Step, cfg.LineWidth)) >= minCount
	}

	if cfg.Step > 0 {
		top := cfg.NumberMax - span
		if top < cfg.NumberMin {
			return 0, 0, infeasiblef("range [%d,%d] is too narrow for %d numbers of step %d",
				cfg.NumberMin, cfg.NumberMax, minCount, cfg.Step)
		}
		n := top - cfg.NumberMin + 1
		i := sort.Search(n, func(i int) bool { return fits(top - i) })
		if i == n {
			return 0, 0, infeasiblef("no start in [%d,%d] fits %d numbers of step %d in width %d",
				cfg.NumberMin, top, minCount, cfg.Step, cfg.LineWidth)
		}
		return cfg.NumberMin, top - i, nil
	}

	// NumberMax is a soft reference for descending runs: when the run needs
	// more room than the range offers, the start may rise above it.
	lo := cfg.NumberMin + span
	upper := cfg.NumberMax
	if lo > upper {
		upper = lo + numeric.Abs(cfg.Step) - 1
	}
	n := upper - lo + 1
	i := sort.Search(n, func(i int) bool { return !fits(lo + i) })
	if i == 0 {
		return 0, 0, infeasiblef("no start in [%d,%d] fits %d numbers of step %d in width %d",
			lo, upper, minCount, cfg.Step, cfg.LineWidth)
	}
	return lo, lo + i - 1, nil
}

// Run walks from start by step while the rendered width (digits plus one
// separating space per number) stays within width. Runs never go negative.
func Run(start, step, width int) []int {
	used := numeric.DigitWidth(start)
	if used > width || start < 0 {
		return nil
	}
	run := []int{start}
	for current := start + step; current >= 0; current += step {
		used += 1 + numeric.DigitWidth(current)
		if used > width {
			break
		}
		run = append(run, current)
	}
	return run
}

// place positions each gap between the cursor and the last index that still
// leaves room for the gaps after it.
func (s *Sequence) place(sizes []int, runLen, minCount int) []model.Gap {
	gaps := make([]model.Gap, 0, len(sizes))
	cursor := 0
	reserve := minCount
	for _, size := range sizes {
		start := between(s.rng, cursor, runLen-reserve)
		gaps = append(gaps, model.Gap{Start: start, Size: size})
		cursor = start + size + 1
		if reserve > size {
			reserve -= size + 1
		}
	}
	return gaps
}
