package generator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-mathsheet/pkg/generator"
	"github.com/goliatone/go-mathsheet/pkg/model"
	"github.com/goliatone/go-mathsheet/pkg/pattern"
)

func baseConfig() model.GenerationConfig {
	cfg := model.DefaultGenerationConfig()
	cfg.NumberMin = 0
	cfg.NumberMax = 50
	cfg.ResultMin = 0
	cfg.ResultMax = 100
	return cfg
}

func satisfies(t *testing.T, p model.OperandPattern, v int, cfg model.GenerationConfig) {
	t.Helper()
	switch p.Kind {
	case model.PatternConstant:
		require.Equal(t, p.Value, v)
	case model.PatternConstantRange:
		require.GreaterOrEqual(t, v, p.Low)
		require.LessOrEqual(t, v, p.High)
	case model.PatternMultipleOf:
		require.Zero(t, v%p.Value, "value %d is not a multiple of %d", v, p.Value)
		require.GreaterOrEqual(t, v, cfg.NumberMin)
		require.LessOrEqual(t, v, cfg.NumberMax)
	default:
		require.GreaterOrEqual(t, v, cfg.NumberMin)
		require.LessOrEqual(t, v, cfg.NumberMax)
	}
}

func TestArithmeticTwoOperandConstraintsHold(t *testing.T) {
	configs := map[string]struct {
		category model.Category
		operands model.OperandConfig
		min, max int
		resMin   int
		resMax   int
	}{
		"add wildcards":          {model.CategoryAdd, model.TwoOperand(model.Wildcard(), model.Wildcard()), 0, 10, 0, 10},
		"subtract non negative":  {model.CategorySubtract, model.TwoOperand(model.Wildcard(), model.Wildcard()), 0, 20, 0, 20},
		"subtract negative":      {model.CategorySubtract, model.TwoOperand(model.Wildcard(), model.Wildcard()), 0, 20, -20, 20},
		"multiple of five":       {model.CategoryAdd, model.TwoOperand(model.MultipleOf(5), model.Wildcard()), 1, 100, 0, 120},
		"constant and range":     {model.CategoryMixed, model.TwoOperand(model.Constant(9), model.ConstantRange(2, 6)), 0, 10, 0, 20},
		"range both sides":       {model.CategorySubtract, model.TwoOperand(model.ConstantRange(10, 19), model.ConstantRange(1, 9)), 0, 20, 1, 18},
		"tens plus ones":         {model.CategoryAdd, model.TwoOperand(model.MultipleOf(10), model.ConstantRange(1, 9)), 10, 90, 0, 99},
		"doubles":                {model.CategoryAdd, model.OneOperand(model.Wildcard()), 0, 10, 0, 20},
	}

	for name, tc := range configs {
		t.Run(name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Category = tc.category
			cfg.Operands = tc.operands
			cfg.NumberMin, cfg.NumberMax = tc.min, tc.max
			cfg.ResultMin, cfg.ResultMax = tc.resMin, tc.resMax

			gen := generator.NewArithmetic(generator.WithSeed(42))
			for i := 0; i < 10_000; i++ {
				expr, err := gen.Generate(cfg)
				require.NoError(t, err)

				result := expr.Result()
				require.GreaterOrEqual(t, result, cfg.ResultMin)
				require.LessOrEqual(t, result, cfg.ResultMax)

				satisfies(t, cfg.Operands.Left, expr.Left, cfg)
				if cfg.Operands.Mode == model.OperandOne {
					require.Equal(t, expr.Left, expr.Right)
					continue
				}
				satisfies(t, cfg.Operands.Right, expr.Right, cfg)
			}
		})
	}
}

func TestArithmeticFixedResultAddition(t *testing.T) {
	cfg := baseConfig()
	cfg.NumberMin, cfg.NumberMax = 0, 10
	cfg.ResultMin, cfg.ResultMax = 0, 20
	cfg.Operands = model.FixedResult(10)

	gen := generator.NewArithmetic(generator.WithSeed(7))
	seen := map[int]bool{}
	for i := 0; i < 2_000; i++ {
		expr, err := gen.Pair(cfg, model.OperatorAdd)
		require.NoError(t, err)
		require.Equal(t, 10, expr.Left+expr.Right)
		require.GreaterOrEqual(t, expr.Right, 0)
		require.LessOrEqual(t, expr.Right, 10)
		seen[expr.Left] = true
	}
	assert.True(t, seen[0], "expected (0,10) to be generated")
	assert.True(t, seen[3], "expected (3,7) to be generated")
}

func TestArithmeticFixedResultSubtraction(t *testing.T) {
	cfg := baseConfig()
	cfg.Category = model.CategorySubtract
	cfg.NumberMin, cfg.NumberMax = 0, 20
	cfg.Operands = model.FixedResult(4)

	gen := generator.NewArithmetic(generator.WithSeed(11))
	for i := 0; i < 1_000; i++ {
		expr, err := gen.Generate(cfg)
		require.NoError(t, err)
		require.Equal(t, 4, expr.Left-expr.Right)
		require.GreaterOrEqual(t, expr.Left, 4)
	}
}

func TestArithmeticNegativeFixedResultSubtraction(t *testing.T) {
	cfg := baseConfig()
	cfg.Category = model.CategorySubtract
	cfg.NumberMin, cfg.NumberMax = 0, 20
	cfg.ResultMin, cfg.ResultMax = -10, 40
	cfg.Operands = pattern.MustParse("=-3")

	gen := generator.NewArithmetic(generator.WithSeed(13))
	for i := 0; i < 1_000; i++ {
		expr, err := gen.Generate(cfg)
		require.NoError(t, err)
		require.Equal(t, -3, expr.Result())
		require.LessOrEqual(t, expr.Right, 20)
	}
}

func TestArithmeticMultipleOfRoundsIntoBounds(t *testing.T) {
	cfg := baseConfig()
	cfg.NumberMin, cfg.NumberMax = 1, 99
	cfg.ResultMin, cfg.ResultMax = 0, 200
	cfg.Operands = model.TwoOperand(model.MultipleOf(10), model.MultipleOf(10))

	gen := generator.NewArithmetic(generator.WithSeed(3))
	for i := 0; i < 5_000; i++ {
		expr, err := gen.Generate(cfg)
		require.NoError(t, err)
		require.Contains(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90}, expr.Left)
		require.Contains(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90}, expr.Right)
	}
}

func TestArithmeticRoundCategoryUsesRoundOperands(t *testing.T) {
	cfg := baseConfig()
	cfg.Category = model.CategoryRoundSubtract
	cfg.NumberMin, cfg.NumberMax = 0, 100

	gen := generator.NewArithmetic(generator.WithSeed(5))
	for i := 0; i < 2_000; i++ {
		expr, err := gen.Generate(cfg)
		require.NoError(t, err)
		require.Equal(t, model.OperatorSubtract, expr.Operator)
		require.Zero(t, expr.Left%10)
		require.Zero(t, expr.Right%10)
		require.GreaterOrEqual(t, expr.Result(), 0)
	}
}

func TestArithmeticRoundUnitOverridesCategory(t *testing.T) {
	cfg := baseConfig()
	cfg.RoundUnit = 5
	cfg.Operands = model.FixedResult(50)

	gen := generator.NewArithmetic(generator.WithSeed(9))
	for i := 0; i < 1_000; i++ {
		expr, err := gen.Generate(cfg)
		require.NoError(t, err)
		require.Zero(t, expr.Left%5)
		require.Zero(t, expr.Right%5)
		require.Equal(t, 50, expr.Result())
	}
}

func TestArithmeticMixedUsesBothOperators(t *testing.T) {
	cfg := baseConfig()
	cfg.Category = model.CategoryMixed

	gen := generator.NewArithmetic(generator.WithSeed(1))
	counts := map[model.Operator]int{}
	for i := 0; i < 2_000; i++ {
		expr, err := gen.Generate(cfg)
		require.NoError(t, err)
		counts[expr.Operator]++
	}
	assert.InDelta(t, 1_000, counts[model.OperatorAdd], 150)
	assert.InDelta(t, 1_000, counts[model.OperatorSubtract], 150)
}

func TestArithmeticContradictionIsInfeasible(t *testing.T) {
	cfg := baseConfig()
	cfg.Operands = model.TwoOperand(model.Constant(3), model.Constant(4))
	cfg.ResultMin, cfg.ResultMax = 0, 5

	gen := generator.NewArithmetic(generator.WithSeed(1), generator.WithMaxAttempts(500))
	_, err := gen.Generate(cfg)
	require.ErrorIs(t, err, generator.ErrInfeasible)
}

func TestArithmeticNoMultipleInBoundsIsInfeasible(t *testing.T) {
	cfg := baseConfig()
	cfg.NumberMin, cfg.NumberMax = 11, 19
	cfg.Operands = model.TwoOperand(model.MultipleOf(10), model.Wildcard())

	gen := generator.NewArithmetic(generator.WithSeed(1), generator.WithMaxAttempts(500))
	_, err := gen.Generate(cfg)
	require.ErrorIs(t, err, generator.ErrInfeasible)
}

func TestArithmeticRejectsInvalidConfig(t *testing.T) {
	cfg := baseConfig()
	cfg.Category = model.CategoryMixed
	cfg.Operands = model.FixedResult(10)

	_, err := generator.NewArithmetic(generator.WithSeed(1)).Generate(cfg)
	require.ErrorIs(t, err, model.ErrInvalidConfig)

	cfg = baseConfig()
	cfg.NumberMin, cfg.NumberMax = 10, 1
	_, err = generator.NewArithmetic(generator.WithSeed(1)).Generate(cfg)
	require.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestArithmeticSeedIsReproducible(t *testing.T) {
	cfg := baseConfig()
	cfg.Category = model.CategoryMixed

	first := generator.NewArithmetic(generator.WithSeed(99))
	second := generator.NewArithmetic(generator.WithSeed(99))
	for i := 0; i < 100; i++ {
		a, err := first.Generate(cfg)
		require.NoError(t, err)
		b, err := second.Generate(cfg)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestRenderMatchesExpressionShape(t *testing.T) {
	shape := regexp.MustCompile(`^\s*\d+\s[+-]\s*\d+=$`)

	cfg := baseConfig()
	cfg.Category = model.CategoryMixed
	cfg.NumberMax = 100
	cfg.ResultMin = -100

	gen := generator.NewArithmetic(generator.WithSeed(4))
	for i := 0; i < 500; i++ {
		expr, err := gen.Generate(cfg)
		require.NoError(t, err)
		rendered := generator.Render(cfg, expr)
		require.Regexp(t, shape, rendered)
		require.Len(t, rendered, 3+3+3+1)
	}
}

func TestRenderRightAlignsBothOperands(t *testing.T) {
	cfg := model.GenerationConfig{NumberMax: 10}
	cases := []struct {
		expr model.Expression
		want string
	}{
		{model.Expression{Left: 3, Right: 7, Operator: model.OperatorAdd}, " 3 +  7="},
		{model.Expression{Left: 10, Right: 3, Operator: model.OperatorSubtract}, "10 -  3="},
		{model.Expression{Left: 4, Right: 10, Operator: model.OperatorAdd}, " 4 + 10="},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, generator.Render(cfg, tc.expr))
	}
}
