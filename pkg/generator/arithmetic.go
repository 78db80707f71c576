package generator

import (
	"math/rand"

	"github.com/goliatone/go-mathsheet/internal/numeric"
	"github.com/goliatone/go-mathsheet/pkg/model"
)

// Arithmetic draws operand pairs that satisfy a GenerationConfig.
type Arithmetic struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewArithmetic constructs an arithmetic generator.
func NewArithmetic(options ...Option) *Arithmetic {
	cfg := newConfig(options...)
	return &Arithmetic{rng: cfg.rng, maxAttempts: cfg.maxAttempts}
}

// Operator picks the operator for one expression. Mixed categories flip a
// fair coin; the choice is made once, outside the pair retry loop.
func (a *Arithmetic) Operator(category model.Category) model.Operator {
	if category.Mixed() {
		if a.rng.Intn(2) == 0 {
			return model.OperatorAdd
		}
		return model.OperatorSubtract
	}
	return category.Operator()
}

// Generate chooses an operator for cfg.Category and draws a matching pair.
func (a *Arithmetic) Generate(cfg model.GenerationConfig) (model.Expression, error) {
	if err := cfg.ValidateSampling(); err != nil {
		return model.Expression{}, err
	}
	return a.Pair(cfg, a.Operator(cfg.Category))
}

// Pair draws (left, right) for op until every active constraint holds, or
// returns ErrInfeasible once the attempt cap is spent.
func (a *Arithmetic) Pair(cfg model.GenerationConfig, op model.Operator) (model.Expression, error) {
	if err := cfg.ValidateSampling(); err != nil {
		return model.Expression{}, err
	}

	unit := cfg.EffectiveRoundUnit()
	operands := cfg.Operands

	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		left := between(a.rng, cfg.NumberMin, cfg.NumberMax)
		right := between(a.rng, cfg.NumberMin, cfg.NumberMax)

		var ok bool
		switch operands.Mode {
		case model.OperandOne:
			left, ok = a.apply(left, rounded(operands.Left, unit), cfg)
			right = left
		case model.OperandFixedResult:
			left, right, ok = a.fixed(left, op, operands.Target, unit, cfg)
		default:
			var okLeft, okRight bool
			left, okLeft = a.apply(left, rounded(operands.Left, unit), cfg)
			right, okRight = a.apply(right, rounded(operands.Right, unit), cfg)
			ok = okLeft && okRight
		}
		if !ok {
			continue
		}

		result := op.Apply(left, right)
		if result < cfg.ResultMin || result > cfg.ResultMax {
			continue
		}
		return model.Expression{Left: left, Right: right, Operator: op}, nil
	}

	return model.Expression{}, infeasiblef("no %s pair for pattern %q in [%d,%d] with result in [%d,%d] after %d attempts",
		op.Symbol(), operands.String(), cfg.NumberMin, cfg.NumberMax, cfg.ResultMin, cfg.ResultMax, a.maxAttempts)
}

// Render formats expr with operands padded to the width of cfg.NumberMax.
func Render(cfg model.GenerationConfig, expr model.Expression) string {
	return expr.Render(numeric.DigitWidth(cfg.NumberMax))
}

// apply transforms a sampled value according to pattern. The boolean is false
// when the pattern cannot be satisfied inside the number bounds.
func (a *Arithmetic) apply(v int, pattern model.OperandPattern, cfg model.GenerationConfig) (int, bool) {
	switch pattern.Kind {
	case model.PatternMultipleOf:
		if v%pattern.Value == 0 {
			return v, true
		}
		return numeric.RoundTo(v, pattern.Value, cfg.NumberMin, cfg.NumberMax)
	case model.PatternConstant:
		return pattern.Value, true
	case model.PatternConstantRange:
		return between(a.rng, pattern.Low, pattern.High), true
	default:
		return v, true
	}
}

// fixed derives the partner operand so the expression evaluates to target.
func (a *Arithmetic) fixed(left int, op model.Operator, target, unit int, cfg model.GenerationConfig) (int, int, bool) {
	left, ok := a.apply(left, rounded(model.Wildcard(), unit), cfg)
	if !ok {
		return 0, 0, false
	}

	right := target - left
	if op == model.OperatorSubtract {
		right = left - target
	}
	if right < cfg.NumberMin || right > cfg.NumberMax {
		return 0, 0, false
	}
	if unit > 0 && right%unit != 0 {
		return 0, 0, false
	}
	return left, right, true
}

// rounded swaps wildcard operands for multiples of unit when rounding is on.
func rounded(pattern model.OperandPattern, unit int) model.OperandPattern {
	if unit > 0 && pattern.IsWildcard() {
		return model.MultipleOf(unit)
	}
	return pattern
}
