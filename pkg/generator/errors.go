package generator

import (
	"errors"
	"fmt"
)

// ErrInfeasible signals that the constraints admit no solution within the
// bounded search.
var ErrInfeasible = errors.New("generator: infeasible constraints")

func infeasiblef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInfeasible}, args...)...)
}
