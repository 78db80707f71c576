// Package model exposes the worksheet types shared by the generators,
// renderers and orchestrator. Definitions live in internal/model; this
// package re-exports them so callers get a stable import path. Operand
// patterns and operand configurations are tagged variants built with the
// constructors below (Wildcard, MultipleOf, TwoOperand, FixedResult, ...),
// and every config type carries a Validate method that reports
// ErrInvalidConfig before any sampling happens.
package model
