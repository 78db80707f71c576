package model

import (
	"fmt"
	"strings"
)

// DefaultRoundUnit is used by the Round* categories when no unit is set.
const DefaultRoundUnit = 10

// Operator is a single arithmetic operation.
type Operator string

const (
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
)

// Symbol returns the printable operator.
func (o Operator) Symbol() string {
	if o == OperatorSubtract {
		return "-"
	}
	return "+"
}

// Apply evaluates left <op> right.
func (o Operator) Apply(left, right int) int {
	if o == OperatorSubtract {
		return left - right
	}
	return left + right
}

// Category selects which operators a worksheet uses and whether operands are
// rounded. It is decided once when configuration is parsed.
type Category string

const (
	CategoryAdd           Category = "add"
	CategorySubtract      Category = "subtract"
	CategoryMixed         Category = "mixed"
	CategoryRoundAdd      Category = "round-add"
	CategoryRoundSubtract Category = "round-subtract"
	CategoryRoundMixed    Category = "round-mixed"
)

var categoryAliases = map[string]Category{
	"+":              CategoryAdd,
	"add":            CategoryAdd,
	"plus":           CategoryAdd,
	"-":              CategorySubtract,
	"subtract":       CategorySubtract,
	"minus":          CategorySubtract,
	"mixed":          CategoryMixed,
	"*":              CategoryMixed,
	"+-":             CategoryMixed,
	"round+":         CategoryRoundAdd,
	"round-add":      CategoryRoundAdd,
	"round-":         CategoryRoundSubtract,
	"round-subtract": CategoryRoundSubtract,
	"round":          CategoryRoundMixed,
	"round-mixed":    CategoryRoundMixed,
}

// ParseCategory maps CLI/config spellings onto a Category.
func ParseCategory(raw string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return CategoryAdd, nil
	}
	if category, ok := categoryAliases[key]; ok {
		return category, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidConfig, raw)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAdd, CategorySubtract, CategoryMixed,
		CategoryRoundAdd, CategoryRoundSubtract, CategoryRoundMixed:
		return true
	}
	return false
}

// Round reports whether the category implies round operands.
func (c Category) Round() bool {
	switch c {
	case CategoryRoundAdd, CategoryRoundSubtract, CategoryRoundMixed:
		return true
	}
	return false
}

// Mixed reports whether the operator is chosen per expression.
func (c Category) Mixed() bool {
	return c == CategoryMixed || c == CategoryRoundMixed
}

// Operator returns the fixed operator for single-operator categories.
func (c Category) Operator() Operator {
	switch c {
	case CategorySubtract, CategoryRoundSubtract:
		return OperatorSubtract
	default:
		return OperatorAdd
	}
}
