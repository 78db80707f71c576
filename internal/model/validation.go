package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig flags configuration values that violate the generator
// invariants before any sampling happens.
var ErrInvalidConfig = errors.New("model: invalid configuration")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate checks the arithmetic configuration invariants.
func (c GenerationConfig) Validate() error {
	if err := c.ValidateSampling(); err != nil {
		return err
	}
	if c.Count < 1 {
		return invalidf("count must be at least 1")
	}
	if c.PerLine < 1 {
		return invalidf("items per line must be at least 1")
	}
	return nil
}

// ValidateSampling checks the subset of invariants a single pair draw needs.
func (c GenerationConfig) ValidateSampling() error {
	if !c.Category.Valid() {
		return invalidf("unknown category %q", c.Category)
	}
	if c.NumberMin < 0 {
		return invalidf("number min %d must not be negative", c.NumberMin)
	}
	if c.NumberMin > c.NumberMax {
		return invalidf("number min %d exceeds number max %d", c.NumberMin, c.NumberMax)
	}
	if c.ResultMin > c.ResultMax {
		return invalidf("result min %d exceeds result max %d", c.ResultMin, c.ResultMax)
	}
	if c.RoundUnit < 0 {
		return invalidf("round unit %d must not be negative", c.RoundUnit)
	}
	if err := c.Operands.Validate(); err != nil {
		return err
	}
	if c.Operands.Mode == OperandFixedResult && c.Category.Mixed() {
		return invalidf("fixed result %d cannot be combined with a mixed category", c.Operands.Target)
	}
	return nil
}

// Validate checks the operand configuration shape.
func (c OperandConfig) Validate() error {
	switch c.Mode {
	case "", OperandTwo:
		if err := c.Left.Validate(); err != nil {
			return err
		}
		return c.Right.Validate()
	case OperandOne:
		return c.Left.Validate()
	case OperandFixedResult:
		return nil
	default:
		return invalidf("unknown operand mode %q", c.Mode)
	}
}

// Validate checks a single operand pattern.
func (p OperandPattern) Validate() error {
	switch p.Kind {
	case "", PatternWildcard, PatternConstant:
		return nil
	case PatternMultipleOf:
		if p.Value < 1 {
			return invalidf("multiple %d must be positive", p.Value)
		}
	case PatternConstantRange:
		if p.Low > p.High {
			return invalidf("range %d~%d is reversed", p.Low, p.High)
		}
	default:
		return invalidf("unknown pattern kind %q", p.Kind)
	}
	return nil
}

// Validate checks the sequence configuration invariants.
func (c SequenceConfig) Validate() error {
	if err := c.ValidateSampling(); err != nil {
		return err
	}
	if c.Count < 1 {
		return invalidf("count must be at least 1")
	}
	if c.PerLine < 1 {
		return invalidf("items per line must be at least 1")
	}
	return nil
}

// ValidateSampling checks the invariants a single line build needs.
func (c SequenceConfig) ValidateSampling() error {
	if c.NumberMin < 0 {
		return invalidf("number min %d must not be negative", c.NumberMin)
	}
	if c.NumberMin > c.NumberMax {
		return invalidf("number min %d exceeds number max %d", c.NumberMin, c.NumberMax)
	}
	if c.Step == 0 {
		return invalidf("step must be non-zero")
	}
	if c.LineWidth < 1 {
		return invalidf("line width must be positive")
	}
	if c.GapsPerLine < 1 {
		return invalidf("gaps per line must be at least 1")
	}
	if c.MaxMissingPerGap < 1 {
		return invalidf("missing numbers per gap must be at least 1")
	}
	return nil
}
