package model

import internalmodel "github.com/goliatone/go-mathsheet/internal/model"

type (
	PatternKind      = internalmodel.PatternKind
	OperandPattern   = internalmodel.OperandPattern
	OperandMode      = internalmodel.OperandMode
	OperandConfig    = internalmodel.OperandConfig
	Operator         = internalmodel.Operator
	Category         = internalmodel.Category
	GenerationConfig = internalmodel.GenerationConfig
	Expression       = internalmodel.Expression
	SequenceConfig   = internalmodel.SequenceConfig
	Gap              = internalmodel.Gap
	SequenceLine     = internalmodel.SequenceLine
	WorksheetKind    = internalmodel.WorksheetKind
	Worksheet        = internalmodel.Worksheet
)

const (
	PatternWildcard      = internalmodel.PatternWildcard
	PatternMultipleOf    = internalmodel.PatternMultipleOf
	PatternConstant      = internalmodel.PatternConstant
	PatternConstantRange = internalmodel.PatternConstantRange

	OperandTwo         = internalmodel.OperandTwo
	OperandOne         = internalmodel.OperandOne
	OperandFixedResult = internalmodel.OperandFixedResult

	OperatorAdd      = internalmodel.OperatorAdd
	OperatorSubtract = internalmodel.OperatorSubtract

	CategoryAdd           = internalmodel.CategoryAdd
	CategorySubtract      = internalmodel.CategorySubtract
	CategoryMixed         = internalmodel.CategoryMixed
	CategoryRoundAdd      = internalmodel.CategoryRoundAdd
	CategoryRoundSubtract = internalmodel.CategoryRoundSubtract
	CategoryRoundMixed    = internalmodel.CategoryRoundMixed

	WorksheetArithmetic    = internalmodel.WorksheetArithmetic
	WorksheetMissingNumber = internalmodel.WorksheetMissingNumber

	DefaultRoundUnit         = internalmodel.DefaultRoundUnit
	DefaultArithmeticCount   = internalmodel.DefaultArithmeticCount
	DefaultArithmeticPerLine = internalmodel.DefaultArithmeticPerLine
	DefaultArithmeticMax     = internalmodel.DefaultArithmeticMax
	DefaultSequenceCount     = internalmodel.DefaultSequenceCount
	DefaultSequencePerLine   = internalmodel.DefaultSequencePerLine
	DefaultSequenceMax       = internalmodel.DefaultSequenceMax
	DefaultSequenceStep      = internalmodel.DefaultSequenceStep
	DefaultLineWidth         = internalmodel.DefaultLineWidth
	DefaultGapsPerLine       = internalmodel.DefaultGapsPerLine
	DefaultMaxMissingPerGap  = internalmodel.DefaultMaxMissingPerGap
)

// ErrInvalidConfig re-exports the configuration validation sentinel.
var ErrInvalidConfig = internalmodel.ErrInvalidConfig

var (
	Wildcard                = internalmodel.Wildcard
	MultipleOf              = internalmodel.MultipleOf
	Constant                = internalmodel.Constant
	ConstantRange           = internalmodel.ConstantRange
	TwoOperand              = internalmodel.TwoOperand
	OneOperand              = internalmodel.OneOperand
	FixedResult             = internalmodel.FixedResult
	ParseCategory           = internalmodel.ParseCategory
	DefaultGenerationConfig = internalmodel.DefaultGenerationConfig
	DefaultSequenceConfig   = internalmodel.DefaultSequenceConfig
)
