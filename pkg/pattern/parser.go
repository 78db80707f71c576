package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-mathsheet/pkg/model"
)

// ErrPatternSyntax reports a malformed operand pattern string.
var ErrPatternSyntax = errors.New("pattern: syntax error")

// Default is the unconstrained two operand pattern.
const Default = "*,*"

func syntaxErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPatternSyntax}, args...)...)
}

// Parse converts raw into an operand configuration.
func Parse(raw string) (model.OperandConfig, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return model.OperandConfig{}, syntaxErrorf("empty pattern")
	}

	parts := strings.Split(input, ",")
	if len(parts) == 2 {
		left, err := ParseOperand(parts[0])
		if err != nil {
			return model.OperandConfig{}, err
		}
		right, err := ParseOperand(parts[1])
		if err != nil {
			return model.OperandConfig{}, err
		}
		return model.TwoOperand(left, right), nil
	}
	if len(parts) > 2 {
		return model.OperandConfig{}, syntaxErrorf("%q has %d operands, want at most 2", input, len(parts))
	}

	if rest, ok := strings.CutPrefix(input, "="); ok {
		// the target may be negative; operands may not
		target, err := parseSignedInt(rest)
		if err != nil {
			return model.OperandConfig{}, syntaxErrorf("fixed result %q: %v", rest, err)
		}
		return model.FixedResult(target), nil
	}

	single, err := ParseOperand(input)
	if err != nil {
		return model.OperandConfig{}, err
	}
	return model.OneOperand(single), nil
}

// MustParse panics when raw is malformed. Intended for static presets.
func MustParse(raw string) model.OperandConfig {
	cfg, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return cfg
}

// ParseOperand parses a single operand pattern.
func ParseOperand(raw string) (model.OperandPattern, error) {
	token := strings.TrimSpace(raw)
	switch {
	case token == "":
		return model.OperandPattern{}, syntaxErrorf("empty operand")
	case token == "*":
		return model.Wildcard(), nil
	case strings.HasSuffix(token, "*"):
		k, err := parseInt(strings.TrimSuffix(token, "*"))
		if err != nil {
			return model.OperandPattern{}, syntaxErrorf("multiple %q: %v", token, err)
		}
		if k < 1 {
			return model.OperandPattern{}, syntaxErrorf("multiple %q must be positive", token)
		}
		return model.MultipleOf(k), nil
	}

	if lo, hi, ok := splitRange(token); ok {
		low, err := parseInt(lo)
		if err != nil {
			return model.OperandPattern{}, syntaxErrorf("range %q: %v", token, err)
		}
		high, err := parseInt(hi)
		if err != nil {
			return model.OperandPattern{}, syntaxErrorf("range %q: %v", token, err)
		}
		if low > high {
			return model.OperandPattern{}, syntaxErrorf("range %q is reversed", token)
		}
		return model.ConstantRange(low, high), nil
	}

	c, err := parseInt(token)
	if err != nil {
		return model.OperandPattern{}, syntaxErrorf("constant %q: %v", token, err)
	}
	return model.Constant(c), nil
}

// splitRange cuts lo~hi or lo-hi. A leading '-' never acts as the separator.
func splitRange(token string) (string, string, bool) {
	if lo, hi, ok := strings.Cut(token, "~"); ok {
		return lo, hi, true
	}
	if idx := strings.Index(token[1:], "-"); idx >= 0 {
		return token[:idx+1], token[idx+2:], true
	}
	return "", "", false
}

func parseInt(raw string) (int, error) {
	n, err := parseSignedInt(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative integer %q", strings.TrimSpace(raw))
	}
	return n, nil
}

func parseSignedInt(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("missing integer")
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", trimmed)
	}
	return n, nil
}
