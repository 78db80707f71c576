package model

// Default worksheet settings used by the CLI.
const (
	DefaultArithmeticCount   = 40
	DefaultArithmeticPerLine = 2
	DefaultArithmeticMax     = 10
	DefaultSequenceCount     = 20
	DefaultSequencePerLine   = 1
	DefaultSequenceMax       = 100
	DefaultSequenceStep      = 1
	DefaultLineWidth         = 20
	DefaultGapsPerLine       = 2
	DefaultMaxMissingPerGap  = 3
)

// DefaultGenerationConfig returns the add-minus defaults: 40 additions over
// [0, 10] with non-negative results, two per line.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Category:  CategoryAdd,
		NumberMin: 0,
		NumberMax: DefaultArithmeticMax,
		ResultMin: 0,
		ResultMax: 2 * DefaultArithmeticMax,
		Operands:  TwoOperand(Wildcard(), Wildcard()),
		Count:     DefaultArithmeticCount,
		PerLine:   DefaultArithmeticPerLine,
	}
}

// DefaultSequenceConfig returns the missing-number defaults.
func DefaultSequenceConfig() SequenceConfig {
	return SequenceConfig{
		NumberMin:        0,
		NumberMax:        DefaultSequenceMax,
		Step:             DefaultSequenceStep,
		LineWidth:        DefaultLineWidth,
		GapsPerLine:      DefaultGapsPerLine,
		MaxMissingPerGap: DefaultMaxMissingPerGap,
		Count:            DefaultSequenceCount,
		PerLine:          DefaultSequencePerLine,
	}
}
