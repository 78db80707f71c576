package model

import (
	"fmt"
	"strconv"
)

// PatternKind enumerates the operand constraint variants.
type PatternKind string

const (
	PatternWildcard      PatternKind = "wildcard"
	PatternMultipleOf    PatternKind = "multipleOf"
	PatternConstant      PatternKind = "constant"
	PatternConstantRange PatternKind = "constantRange"
)

// OperandPattern constrains the values a single operand may take. Value holds
// the multiple for PatternMultipleOf and the constant for PatternConstant;
// Low/High bound PatternConstantRange (inclusive).
type OperandPattern struct {
	Kind  PatternKind `json:"kind"`
	Value int         `json:"value,omitempty"`
	Low   int         `json:"low,omitempty"`
	High  int         `json:"high,omitempty"`
}

// Wildcard accepts any value inside the configured bounds.
func Wildcard() OperandPattern {
	return OperandPattern{Kind: PatternWildcard}
}

// MultipleOf snaps sampled values onto multiples of k.
func MultipleOf(k int) OperandPattern {
	return OperandPattern{Kind: PatternMultipleOf, Value: k}
}

// Constant pins the operand to c regardless of bounds.
func Constant(c int) OperandPattern {
	return OperandPattern{Kind: PatternConstant, Value: c}
}

// ConstantRange draws uniformly from [lo, hi] regardless of bounds.
func ConstantRange(lo, hi int) OperandPattern {
	return OperandPattern{Kind: PatternConstantRange, Low: lo, High: hi}
}

// IsWildcard reports whether the pattern leaves the operand unconstrained.
func (p OperandPattern) IsWildcard() bool {
	return p.Kind == "" || p.Kind == PatternWildcard
}

// String re-emits the pattern in the mini-language accepted by the parser.
func (p OperandPattern) String() string {
	switch p.Kind {
	case PatternMultipleOf:
		return strconv.Itoa(p.Value) + "*"
	case PatternConstant:
		return strconv.Itoa(p.Value)
	case PatternConstantRange:
		return fmt.Sprintf("%d~%d", p.Low, p.High)
	default:
		return "*"
	}
}

// OperandMode enumerates the operand configuration variants.
type OperandMode string

const (
	OperandTwo         OperandMode = "two"
	OperandOne         OperandMode = "one"
	OperandFixedResult OperandMode = "fixedResult"
)

// OperandConfig describes how both operands of an expression are produced.
// Left/Right are used by OperandTwo, Left alone by OperandOne, and Target by
// OperandFixedResult.
type OperandConfig struct {
	Mode   OperandMode    `json:"mode"`
	Left   OperandPattern `json:"left"`
	Right  OperandPattern `json:"right"`
	Target int            `json:"target,omitempty"`
}

// TwoOperand constrains left and right independently.
func TwoOperand(left, right OperandPattern) OperandConfig {
	return OperandConfig{Mode: OperandTwo, Left: left, Right: right}
}

// OneOperand applies a single pattern and repeats the value on both sides.
func OneOperand(pattern OperandPattern) OperandConfig {
	return OperandConfig{Mode: OperandOne, Left: pattern, Right: pattern}
}

// FixedResult requires the operands to combine to target.
func FixedResult(target int) OperandConfig {
	return OperandConfig{Mode: OperandFixedResult, Left: Wildcard(), Right: Wildcard(), Target: target}
}

// String re-emits the configuration in pattern syntax.
func (c OperandConfig) String() string {
	switch c.Mode {
	case OperandOne:
		return c.Left.String()
	case OperandFixedResult:
		return "=" + strconv.Itoa(c.Target)
	default:
		return c.Left.String() + "," + c.Right.String()
	}
}

// GenerationConfig drives the arithmetic generator.
type GenerationConfig struct {
	Category  Category      `json:"category"`
	NumberMin int           `json:"numberMin"`
	NumberMax int           `json:"numberMax"`
	ResultMin int           `json:"resultMin"`
	ResultMax int           `json:"resultMax"`
	Operands  OperandConfig `json:"operands"`
	Count     int           `json:"count"`
	PerLine   int           `json:"perLine"`
	// RoundUnit turns wildcard operands into multiples of the unit. Zero
	// disables rounding; Round* categories fall back to DefaultRoundUnit.
	RoundUnit int `json:"roundUnit,omitempty"`
}

// EffectiveRoundUnit resolves the rounding unit for the configured category.
func (c GenerationConfig) EffectiveRoundUnit() int {
	if c.RoundUnit > 0 {
		return c.RoundUnit
	}
	if c.Category.Round() {
		return DefaultRoundUnit
	}
	return 0
}

// Expression is one generated arithmetic item.
type Expression struct {
	Left     int      `json:"left"`
	Right    int      `json:"right"`
	Operator Operator `json:"operator"`
}

// Result evaluates the expression.
func (e Expression) Result() int {
	return e.Operator.Apply(e.Left, e.Right)
}

// Render formats the expression as "<left> <op> <right>=" with both operands
// right-aligned to width characters, so width 2 renders 3+7 as " 3 +  7=".
// The right operand is padded on the left, never on the right, so nothing
// trails the equals sign.
func (e Expression) Render(width int) string {
	return fmt.Sprintf("%*d %s %*d=", width, e.Left, e.Operator.Symbol(), width, e.Right)
}
